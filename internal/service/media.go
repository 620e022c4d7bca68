package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/policy"
	"arcana/internal/repository"
	"arcana/internal/storage"
	"arcana/pkg/validator"
)

const maxMediaSize = 10 << 20 // 10 МБ

var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type MediaServiceImpl struct {
	repo        repository.MediaRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewMediaService(repo repository.MediaRepository, fileStorage storage.FileStorage, logger *zap.Logger) *MediaServiceImpl {
	return &MediaServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, actor *domain.User, data []byte, filename, alt string) (*domain.Media, error) {
	if actor == nil || !policy.CanPerform(actor, policy.ActionCreate, policy.KindMedia, actor.ID) {
		return nil, domain.ErrForbidden
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: пустой файл", domain.ErrInvalidArgument)
	}
	if len(data) > maxMediaSize {
		return nil, fmt.Errorf("%w: файл превышает допустимый размер", domain.ErrInvalidArgument)
	}

	mimeType := http.DetectContentType(data)
	if !allowedMediaTypes[mimeType] {
		return nil, fmt.Errorf("%w: неподдерживаемый тип файла %s", domain.ErrInvalidArgument, mimeType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, fmt.Errorf("%w: у файла отсутствует расширение", domain.ErrInvalidArgument)
	}

	fileURL, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки файла в хранилище", zap.String("filename", filename), zap.Error(err))
		return nil, errors.New("ошибка при загрузке файла")
	}

	media := domain.Media{
		OwnerID:   actor.ID,
		URL:       fileURL,
		Alt:       validator.SanitizeString(alt),
		MimeType:  mimeType,
		Size:      int64(len(data)),
		CreatedAt: time.Now(),
	}

	id, err := s.repo.Create(ctx, media)
	if err != nil {
		s.logger.Error("ошибка сохранения метаданных файла", zap.Error(err))
		if delErr := s.fileStorage.DeleteFile(ctx, fileURL); delErr != nil {
			s.logger.Warn("не удалось удалить файл из хранилища", zap.String("url", fileURL), zap.Error(delErr))
		}
		return nil, errors.New("ошибка при загрузке файла")
	}

	media.ID = id
	return &media, nil
}

func (s *MediaServiceImpl) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if actor == nil {
		return domain.ErrForbidden
	}

	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if actor.Role == domain.UserRoleModerator {
			if errors.Is(err, domain.ErrNotFound) {
				return err
			}
			s.logger.Error("ошибка получения файла", zap.Int64("mediaId", id), zap.Error(err))
			return errors.New("ошибка при удалении файла")
		}
		return domain.ErrForbidden
	}

	if !policy.CanPerform(actor, policy.ActionDelete, policy.KindMedia, media.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления метаданных файла", zap.Int64("mediaId", id), zap.Error(err))
		return errors.New("ошибка при удалении файла")
	}

	if err := s.fileStorage.DeleteFile(ctx, media.URL); err != nil {
		s.logger.Warn("не удалось удалить файл из хранилища", zap.String("url", media.URL), zap.Error(err))
	}

	return nil
}
