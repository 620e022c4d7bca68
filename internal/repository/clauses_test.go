package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcana/internal/query"
)

func TestCompileClauses_ProductQuery(t *testing.T) {
	params := url.Values{}
	params.Set("search", "руны")
	params.Set("minPrice", "100")
	params.Set("maxPrice", "500")

	q, err := query.Products(params)
	require.NoError(t, err)

	where, args, next := compileClauses(q.Clauses(), 1)

	assert.Equal(t, "status = $1 AND title ILIKE $2 AND price >= $3 AND price <= $4", where)
	assert.Equal(t, []any{"published", "%руны%", 100.0, 500.0}, args)
	assert.Equal(t, 5, next)
}

func TestCompileClauses_SpecialistOrSearch(t *testing.T) {
	params := url.Values{}
	params.Set("search", "астролог")

	q, err := query.Specialists(params)
	require.NoError(t, err)

	where, args, _ := compileClauses(q.Clauses(), 1)

	assert.Equal(t,
		"role = $1 AND is_active = $2 AND (name ILIKE $3 OR surname ILIKE $4 OR specialization ILIKE $5)",
		where)
	assert.Equal(t, []any{"specialist", true, "%астролог%", "%астролог%", "%астролог%"}, args)
}

// Клаузула видимости всегда компилируется первой: отфильтровать
// неопубликованное невозможно никакой комбинацией параметров.
func TestCompileClauses_MandatoryClauseAlwaysFirst(t *testing.T) {
	combos := []url.Values{
		{},
		{"search": {"x"}},
		{"minPrice": {"1"}, "maxPrice": {"2"}, "search": {"y"}, "sort": {"price_asc"}},
		{"status": {"draft"}},
	}

	for _, params := range combos {
		q, err := query.Products(params)
		require.NoError(t, err)

		where, args, _ := compileClauses(q.Clauses(), 1)
		assert.Contains(t, where, "status = $1")
		require.NotEmpty(t, args)
		assert.Equal(t, "published", args[0])
	}
}
