package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcana/internal/domain"
)

type mockAuthRepository struct {
	mock.Mock
}

func (m *mockAuthRepository) CreateSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockAuthRepository) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	args := m.Called(ctx, refreshToken)
	if s := args.Get(0); s != nil {
		return s.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthRepository) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAuthRepository) DeleteSessionsByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUserUpdatePhone(t *testing.T) {
	client := &domain.User{ID: 7, Role: domain.UserRoleClient, IsActive: true}

	t.Run("телефон нормализуется перед сохранением", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := NewUserService(userRepo, new(mockAuthRepository), zap.NewNop())

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(client, nil)
		userRepo.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(dto domain.UpdateUserDTO) bool {
			return dto.Phone != nil && *dto.Phone == "+79123456789"
		})).Return(nil)

		_, err := svc.Update(context.Background(), client, 7, domain.UpdateUserDTO{
			Phone: strPtr("8 (912) 345-67-89"),
		})

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("некорректный телефон не доходит до хранилища", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := NewUserService(userRepo, new(mockAuthRepository), zap.NewNop())

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(client, nil)

		_, err := svc.Update(context.Background(), client, 7, domain.UpdateUserDTO{
			Phone: strPtr("абракадабра"),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserDeactivationRevokesSessions(t *testing.T) {
	moderator := &domain.User{ID: 1, Role: domain.UserRoleModerator, IsActive: true}
	target := &domain.User{ID: 7, Role: domain.UserRoleClient, IsActive: true}

	userRepo := new(mockUserRepository)
	authRepo := new(mockAuthRepository)
	svc := NewUserService(userRepo, authRepo, zap.NewNop())

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(target, nil)
	userRepo.On("Update", mock.Anything, int64(7), mock.Anything).Return(nil)
	authRepo.On("DeleteSessionsByUserID", mock.Anything, int64(7)).Return(nil)

	_, err := svc.Update(context.Background(), moderator, 7, domain.UpdateUserDTO{
		IsActive: boolPtr(false),
	})

	require.NoError(t, err)
	authRepo.AssertExpectations(t)
}

func TestUserDelete(t *testing.T) {
	admin := &domain.User{ID: 1, Role: domain.UserRoleAdmin, IsActive: true}

	t.Run("администратор удаляет аккаунт вместе с сессиями", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authRepo := new(mockAuthRepository)
		svc := NewUserService(userRepo, authRepo, zap.NewNop())

		authRepo.On("DeleteSessionsByUserID", mock.Anything, int64(7)).Return(nil)
		userRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

		err := svc.Delete(context.Background(), admin, 7)

		require.NoError(t, err)
		authRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("модератору удаление аккаунтов недоступно", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		authRepo := new(mockAuthRepository)
		svc := NewUserService(userRepo, authRepo, zap.NewNop())

		moderator := &domain.User{ID: 2, Role: domain.UserRoleModerator, IsActive: true}
		err := svc.Delete(context.Background(), moderator, 7)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		authRepo.AssertNotCalled(t, "DeleteSessionsByUserID", mock.Anything, mock.Anything)
	})

	t.Run("анонимное удаление отклоняется", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := NewUserService(userRepo, new(mockAuthRepository), zap.NewNop())

		err := svc.Delete(context.Background(), nil, 7)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
