package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcana/config"
	"arcana/internal/domain"
	"arcana/internal/query"
	"arcana/internal/video"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error) {
	args := m.Called(ctx, dto, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) ListSpecialists(ctx context.Context, q query.Query, limit, offset int) ([]domain.User, int, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

type mockTokenProvider struct {
	mock.Mock
}

func (m *mockTokenProvider) JoinToken(ctx context.Context, roomName string, identity video.Identity) (string, error) {
	args := m.Called(ctx, roomName, identity)
	return args.String(0), args.Error(1)
}

func newConsultationService(userRepo *mockUserRepository, provider *mockTokenProvider) *ConsultationServiceImpl {
	return NewConsultationService(userRepo, provider, config.LiveKitConfig{
		URL:       "wss://video.example.com",
		APIKey:    "key",
		APISecret: "secret",
	}, zap.NewNop())
}

func TestConsultationAuthorizeJoin(t *testing.T) {
	specialist := &domain.User{
		ID:       7,
		Surname:  "Иванова",
		Name:     "Мария",
		Role:     domain.UserRoleSpecialist,
		IsActive: true,
	}

	t.Run("успешное подключение", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(specialist, nil)
		provider.On("JoinToken", mock.Anything, "room-42", mock.MatchedBy(func(id video.Identity) bool {
			return id.ID == 7 && id.Name == "Иванова Мария"
		})).Return("signed-token", nil)

		token, err := svc.AuthorizeJoin(context.Background(), 7, "room-42")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token.Token)
		assert.Equal(t, "wss://video.example.com", token.URL)
		userRepo.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("без авторизации провайдер не вызывается", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		token, err := svc.AuthorizeJoin(context.Background(), 0, "room-42")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, token)
		provider.AssertNotCalled(t, "JoinToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("недопустимое имя комнаты", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		for _, room := range []string{"", "комната", "room with spaces", "room/../etc"} {
			token, err := svc.AuthorizeJoin(context.Background(), 7, room)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument, "room=%q", room)
			assert.Nil(t, token)
		}

		provider.AssertNotCalled(t, "JoinToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("неизвестный пользователь", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		token, err := svc.AuthorizeJoin(context.Background(), 99, "room-42")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, token)
		provider.AssertNotCalled(t, "JoinToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("деактивированный аккаунт", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		inactive := &domain.User{ID: 8, Surname: "Петров", Name: "Олег", Role: domain.UserRoleClient}
		userRepo.On("GetByID", mock.Anything, int64(8)).Return(inactive, nil)

		token, err := svc.AuthorizeJoin(context.Background(), 8, "room-42")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, token)
	})

	t.Run("ошибка провайдера", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		provider := new(mockTokenProvider)
		svc := newConsultationService(userRepo, provider)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(specialist, nil)
		provider.On("JoinToken", mock.Anything, "room-42", mock.Anything).
			Return("", errors.New("ключи API видео-провайдера не настроены"))

		token, err := svc.AuthorizeJoin(context.Background(), 7, "room-42")

		assert.ErrorIs(t, err, domain.ErrProvider)
		assert.Nil(t, token)
	})
}

func TestConsultationMetadata(t *testing.T) {
	userRepo := new(mockUserRepository)
	provider := new(mockTokenProvider)
	svc := newConsultationService(userRepo, provider)

	client := &domain.User{
		ID:        3,
		Surname:   "Сидоров",
		Name:      "Павел",
		Role:      domain.UserRoleClient,
		AvatarURL: "https://cdn.example.com/media/avatar.png",
		IsActive:  true,
	}

	userRepo.On("GetByID", mock.Anything, int64(3)).Return(client, nil)
	provider.On("JoinToken", mock.Anything, "daily", mock.MatchedBy(func(id video.Identity) bool {
		return assert.ObjectsAreEqual(
			`{"role":"client","avatar":"https://cdn.example.com/media/avatar.png"}`,
			id.Metadata,
		)
	})).Return("ok", nil)

	_, err := svc.AuthorizeJoin(context.Background(), 3, "daily")

	require.NoError(t, err)
	provider.AssertExpectations(t)
}
