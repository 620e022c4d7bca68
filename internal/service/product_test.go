package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/query"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, ownerID int64, dto domain.CreateProductDTO) (int64, error) {
	args := m.Called(ctx, ownerID, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, id int64, dto domain.UpdateProductDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) List(ctx context.Context, q query.Query, limit, offset int) ([]domain.Product, int, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func TestProductDelete(t *testing.T) {
	owner := &domain.User{ID: 10, Role: domain.UserRoleSpecialist, IsActive: true}
	stranger := &domain.User{ID: 11, Role: domain.UserRoleSpecialist, IsActive: true}
	moderator := &domain.User{ID: 1, Role: domain.UserRoleModerator, IsActive: true}
	client := &domain.User{ID: 2, Role: domain.UserRoleClient, IsActive: true}

	t.Run("владелец удаляет свой товар", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)

		err := svc.Delete(context.Background(), owner, 5)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("анониму отказано до обращения к данным", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		err := svc.Delete(context.Background(), nil, 5)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "GetOwnerID", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("чужой специалист получает отказ", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)

		err := svc.Delete(context.Background(), stranger, 5)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("клиент получает отказ", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)

		err := svc.Delete(context.Background(), client, 5)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("несуществующий товар для непривилегированного неотличим от запрета", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(404)).Return(int64(0), domain.ErrNotFound)

		err := svc.Delete(context.Background(), stranger, 404)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("модератор видит отсутствие товара", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(404)).Return(int64(0), domain.ErrNotFound)

		err := svc.Delete(context.Background(), moderator, 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("модератор удаляет чужой товар", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)

		err := svc.Delete(context.Background(), moderator, 5)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProductCreate(t *testing.T) {
	specialist := &domain.User{ID: 10, Role: domain.UserRoleSpecialist, IsActive: true}

	dto := domain.CreateProductDTO{
		Title:    "Колода Райдера-Уэйта",
		Price:    1500,
		Currency: domain.CurrencyRUB,
		Stock:    3,
	}

	t.Run("специалист создает товар", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		created := &domain.Product{
			ID:       21,
			Title:    dto.Title,
			Price:    dto.Price,
			Currency: dto.Currency,
			Stock:    dto.Stock,
			Status:   domain.ProductStatusDraft,
			OwnerID:  specialist.ID,
		}

		repo.On("Create", mock.Anything, int64(10), dto).Return(int64(21), nil)
		repo.On("GetByID", mock.Anything, int64(21)).Return(created, nil)

		card, err := svc.Create(context.Background(), specialist, dto)

		require.NoError(t, err)
		assert.Equal(t, int64(21), card.ID)
		assert.Equal(t, "1500 ₽", card.FormattedPrice)
	})

	t.Run("клиент не может создать товар", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		client := &domain.User{ID: 2, Role: domain.UserRoleClient, IsActive: true}
		card, err := svc.Create(context.Background(), client, dto)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, card)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("отрицательная цена отклоняется", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		bad := dto
		bad.Price = -1
		card, err := svc.Create(context.Background(), specialist, bad)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Nil(t, card)
	})
}

func TestProductUpdateOwnership(t *testing.T) {
	owner := &domain.User{ID: 10, Role: domain.UserRoleSpecialist, IsActive: true}
	stranger := &domain.User{ID: 11, Role: domain.UserRoleSpecialist, IsActive: true}

	newTitle := "Обновленное название"
	dto := domain.UpdateProductDTO{Title: &newTitle}

	t.Run("владелец обновляет товар", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		updated := &domain.Product{
			ID:       5,
			Title:    newTitle,
			Price:    1500,
			Currency: domain.CurrencyRUB,
			Status:   domain.ProductStatusPublished,
			OwnerID:  10,
		}

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)
		repo.On("Update", mock.Anything, int64(5), dto).Return(nil)
		repo.On("GetByID", mock.Anything, int64(5)).Return(updated, nil)

		card, err := svc.Update(context.Background(), owner, 5, dto)

		require.NoError(t, err)
		assert.Equal(t, newTitle, card.Title)
	})

	t.Run("чужой специалист не может обновить", func(t *testing.T) {
		repo := new(mockProductRepository)
		svc := NewProductService(repo, zap.NewNop())

		repo.On("GetOwnerID", mock.Anything, int64(5)).Return(int64(10), nil)

		card, err := svc.Update(context.Background(), stranger, 5, dto)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, card)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
