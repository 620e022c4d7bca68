package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcana/internal/domain"
)

type mockMediaRepository struct {
	mock.Mock
}

func (m *mockMediaRepository) Create(ctx context.Context, media domain.Media) (int64, error) {
	args := m.Called(ctx, media)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMediaRepository) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if md := args.Get(0); md != nil {
		return md.(*domain.Media), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMediaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteFile(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

func (m *mockFileStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	args := m.Called(ctx, fileURL)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFileStorage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, fileURL, expiry)
	return args.String(0), args.Error(1)
}

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestMediaUploadSanitizesAlt(t *testing.T) {
	specialist := &domain.User{ID: 10, Role: domain.UserRoleSpecialist, IsActive: true}

	repo := new(mockMediaRepository)
	fs := new(mockFileStorage)
	svc := NewMediaService(repo, fs, zap.NewNop())

	fs.On("UploadFile", mock.Anything, pngSignature, "pic.png").
		Return("https://cdn.example.com/media/pic.png", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(media domain.Media) bool {
		return media.Alt == "расклад таро"
	})).Return(int64(1), nil)

	media, err := svc.Upload(context.Background(), specialist, pngSignature, "pic.png", `расклад <"таро">;`)

	require.NoError(t, err)
	assert.Equal(t, "расклад таро", media.Alt)
	repo.AssertExpectations(t)
}

func TestMediaUploadAnonymousRejected(t *testing.T) {
	repo := new(mockMediaRepository)
	fs := new(mockFileStorage)
	svc := NewMediaService(repo, fs, zap.NewNop())

	media, err := svc.Upload(context.Background(), nil, pngSignature, "pic.png", "")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, media)
	fs.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}
