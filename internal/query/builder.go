package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"arcana/internal/domain"
)

// Ключи сортировки — закрытое перечисление. Нераспознанное значение
// откатывается к сортировке по умолчанию (новые сверху).
const (
	SortDefault        = "created_at DESC"
	sortPriceAsc       = "price_asc"
	sortPriceDesc      = "price_desc"
	sortExperienceDesc = "experience_desc"
)

// Products собирает запрос каталога товаров. Видимость status=published
// обязательна и не переопределяется параметрами.
func Products(params url.Values) (Query, error) {
	q := Query{
		mandatory: []Clause{Equals{Field: "status", Value: string(domain.ProductStatusPublished)}},
		orderBy:   SortDefault,
	}

	if search := first(params, "search"); search != "" {
		q.clauses = append(q.clauses, Contains{Field: "title", Value: search})
	}

	priceRange, err := parseRange(params, "price", "minPrice", "maxPrice")
	if err != nil {
		return Query{}, err
	}
	if priceRange != nil {
		q.clauses = append(q.clauses, *priceRange)
	}

	switch first(params, "sort") {
	case sortPriceAsc:
		q.orderBy = "price ASC"
	case sortPriceDesc:
		q.orderBy = "price DESC"
	}

	return q, nil
}

// Specialists собирает запрос каталога специалистов. Видимость
// role=specialist и is_active=true обязательна и не переопределяется
// параметрами: деактивированный аккаунт исчезает из витрины так же, как
// его карточка перестаёт открываться.
func Specialists(params url.Values) (Query, error) {
	q := Query{
		mandatory: []Clause{
			Equals{Field: "role", Value: string(domain.UserRoleSpecialist)},
			Equals{Field: "is_active", Value: true},
		},
		orderBy: SortDefault,
	}

	if search := first(params, "search"); search != "" {
		q.clauses = append(q.clauses, Or{Clauses: []Clause{
			Contains{Field: "name", Value: search},
			Contains{Field: "surname", Value: search},
			Contains{Field: "specialization", Value: search},
		}})
	}

	priceRange, err := parseRange(params, "service_cost_amount", "minPrice", "maxPrice")
	if err != nil {
		return Query{}, err
	}
	if priceRange != nil {
		q.clauses = append(q.clauses, *priceRange)
	}

	expRange, err := parseRange(params, "experience", "minExperience", "")
	if err != nil {
		return Query{}, err
	}
	if expRange != nil {
		q.clauses = append(q.clauses, *expRange)
	}

	switch first(params, "sort") {
	case sortPriceAsc:
		q.orderBy = "service_cost_amount ASC"
	case sortPriceDesc:
		q.orderBy = "service_cost_amount DESC"
	case sortExperienceDesc:
		q.orderBy = "experience DESC"
	}

	return q, nil
}

// first реализует политику «первое значение побеждает» для повторяющихся
// ключей фильтра.
func first(params url.Values, key string) string {
	vals := params[key]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// parseRange читает границы числового фильтра. Нечисловое значение
// игнорируется (фильтр деградирует до «без ограничения»), отрицательная
// граница — структурная ошибка запроса.
func parseRange(params url.Values, field, minKey, maxKey string) (*Range, error) {
	r := Range{Field: field}

	min, err := parseBound(first(params, minKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", minKey, err)
	}
	r.Min = min

	if maxKey != "" {
		max, err := parseBound(first(params, maxKey))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", maxKey, err)
		}
		r.Max = max
	}

	if r.Min == nil && r.Max == nil {
		return nil, nil
	}
	return &r, nil
}

func parseBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, nil
	}
	// ParseFloat принимает NaN и Inf — для фильтра это такой же мусор,
	// как нечисловая строка.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, nil
	}
	if v < 0 {
		return nil, domain.ErrInvalidArgument
	}
	return &v, nil
}
