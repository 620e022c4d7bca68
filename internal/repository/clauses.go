package repository

import (
	"fmt"
	"strings"

	"arcana/internal/query"
)

// compileClauses переводит дерево предикатов в SQL-условие WHERE с
// нумерованными аргументами. Клаузулы верхнего уровня соединяются AND.
func compileClauses(clauses []query.Clause, argIndex int) (string, []any, int) {
	var (
		conditions []string
		args       []any
	)

	for _, c := range clauses {
		cond, cArgs, next := compileClause(c, argIndex)
		conditions = append(conditions, cond)
		args = append(args, cArgs...)
		argIndex = next
	}

	return strings.Join(conditions, " AND "), args, argIndex
}

func compileClause(c query.Clause, argIndex int) (string, []any, int) {
	switch v := c.(type) {
	case query.Equals:
		cond := fmt.Sprintf("%s = $%d", v.Field, argIndex)
		return cond, []any{v.Value}, argIndex + 1

	case query.Contains:
		cond := fmt.Sprintf("%s ILIKE $%d", v.Field, argIndex)
		return cond, []any{"%" + v.Value + "%"}, argIndex + 1

	case query.Range:
		var (
			parts []string
			args  []any
		)
		if v.Min != nil {
			parts = append(parts, fmt.Sprintf("%s >= $%d", v.Field, argIndex))
			args = append(args, *v.Min)
			argIndex++
		}
		if v.Max != nil {
			parts = append(parts, fmt.Sprintf("%s <= $%d", v.Field, argIndex))
			args = append(args, *v.Max)
			argIndex++
		}
		return strings.Join(parts, " AND "), args, argIndex

	case query.Or:
		var (
			parts []string
			args  []any
		)
		for _, inner := range v.Clauses {
			cond, cArgs, next := compileClause(inner, argIndex)
			parts = append(parts, cond)
			args = append(args, cArgs...)
			argIndex = next
		}
		return "(" + strings.Join(parts, " OR ") + ")", args, argIndex
	}

	// Неизвестная клаузула не может дать невидимое условие: лучше пустой
	// результат, чем утечка неопубликованного.
	return "FALSE", nil, argIndex
}
