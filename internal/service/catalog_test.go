package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/query"
)

func TestCatalogGetProduct(t *testing.T) {
	t.Run("опубликованный товар отдается карточкой", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		svc := NewCatalogService(productRepo, new(mockUserRepository), zap.NewNop())

		productRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Product{
			ID:       5,
			Title:    "Натальная карта",
			Price:    2500,
			Currency: domain.CurrencyRUB,
			Stock:    1,
			Status:   domain.ProductStatusPublished,
			OwnerID:  10,
		}, nil)

		card, err := svc.GetProduct(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "Натальная карта", card.Title)
		assert.True(t, card.CanAddToCart)
	})

	t.Run("черновик неотличим от несуществующего", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		svc := NewCatalogService(productRepo, new(mockUserRepository), zap.NewNop())

		productRepo.On("GetByID", mock.Anything, int64(6)).Return(&domain.Product{
			ID:     6,
			Status: domain.ProductStatusDraft,
		}, nil)

		card, err := svc.GetProduct(context.Background(), 6)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, card)
	})
}

func TestCatalogListProducts(t *testing.T) {
	t.Run("параметры запроса доходят до хранилища предикатами", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		svc := NewCatalogService(productRepo, new(mockUserRepository), zap.NewNop())

		params := url.Values{"search": {"таро"}, "sort": {"price_asc"}}

		productRepo.On("List", mock.Anything, mock.MatchedBy(func(q query.Query) bool {
			clauses := q.Clauses()
			if len(clauses) != 2 {
				return false
			}
			first, ok := clauses[0].(query.Equals)
			return ok && first.Field == "status" && first.Value == "published" &&
				q.OrderBy() == "price ASC"
		}), 20, 0).Return([]domain.Product{
			{ID: 1, Title: "Таро для начинающих", Price: 900, Currency: domain.CurrencyRUB, Stock: 5, Status: domain.ProductStatusPublished},
		}, 1, nil)

		cards, total, err := svc.ListProducts(context.Background(), params, 20, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, cards, 1)
		assert.Equal(t, "Таро для начинающих", cards[0].Title)
	})

	t.Run("отрицательная цена не доходит до хранилища", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		svc := NewCatalogService(productRepo, new(mockUserRepository), zap.NewNop())

		params := url.Values{"minPrice": {"-100"}}

		cards, total, err := svc.ListProducts(context.Background(), params, 20, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Nil(t, cards)
		assert.Zero(t, total)
		productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// Витрина и карточка согласованы: деактивированный специалист не попадает
// в листинг, поэтому его карточка не может дать битую ссылку.
func TestCatalogListSpecialistsHidesInactive(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewCatalogService(new(mockProductRepository), userRepo, zap.NewNop())

	userRepo.On("ListSpecialists", mock.Anything, mock.MatchedBy(func(q query.Query) bool {
		for _, c := range q.Clauses() {
			if eq, ok := c.(query.Equals); ok && eq.Field == "is_active" && eq.Value == true {
				return true
			}
		}
		return false
	}), 20, 0).Return([]domain.User{}, 0, nil)

	_, _, err := svc.ListSpecialists(context.Background(), url.Values{}, 20, 0)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestCatalogGetSpecialist(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewCatalogService(new(mockProductRepository), userRepo, zap.NewNop())

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{
		ID:       2,
		Surname:  "Кузнецова",
		Name:     "Анна",
		Role:     domain.UserRoleClient,
		IsActive: true,
	}, nil)

	card, err := svc.GetSpecialist(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, card)
}
