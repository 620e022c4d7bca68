// Package query переводит пользовательские параметры фильтрации витрины в
// дерево предикатов для слоя хранения. Обязательная клаузула публичной
// видимости задаётся только конструкторами и недостижима для параметров
// запроса.
package query

// Clause — один предикат фильтрации. Все клаузулы запроса соединяются
// логическим И.
type Clause interface {
	isClause()
}

// Equals — точное совпадение значения поля.
type Equals struct {
	Field string
	Value any
}

// Contains — регистронезависимое вхождение подстроки.
type Contains struct {
	Field string
	Value string
}

// Range — числовой диапазон; nil-границы не накладывают ограничения.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// Or — дизъюнкция вложенных клаузул.
type Or struct {
	Clauses []Clause
}

func (Equals) isClause()   {}
func (Contains) isClause() {}
func (Range) isClause()    {}
func (Or) isClause()       {}

// Query — собранный запрос: обязательные клаузулы видимости, клаузулы
// фильтров и ключ сортировки.
type Query struct {
	mandatory []Clause
	clauses   []Clause
	orderBy   string
}

// Clauses возвращает полный набор предикатов; клаузулы видимости всегда
// идут первыми и неотделимы от пользовательских фильтров.
func (q Query) Clauses() []Clause {
	out := make([]Clause, 0, len(q.mandatory)+len(q.clauses))
	out = append(out, q.mandatory...)
	out = append(out, q.clauses...)
	return out
}

// OrderBy возвращает SQL-выражение сортировки.
func (q Query) OrderBy() string {
	return q.orderBy
}
