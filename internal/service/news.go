package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/repository"
)

type NewsServiceImpl struct {
	repo   repository.NewsRepository
	logger *zap.Logger
}

func NewNewsService(repo repository.NewsRepository, logger *zap.Logger) *NewsServiceImpl {
	return &NewsServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *NewsServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.News, int, error) {
	news, total, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения новостей", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении новостей")
	}
	return news, total, nil
}

func (s *NewsServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.News, error) {
	news, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения новости", zap.String("slug", slug), zap.Error(err))
		return nil, errors.New("ошибка при получении новости")
	}
	return news, nil
}
