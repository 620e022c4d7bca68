package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/projection"
	"arcana/internal/query"
	"arcana/internal/repository"
)

type CatalogServiceImpl struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, userRepo repository.UserRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, params url.Values, limit, offset int) ([]projection.ProductCard, int, error) {
	q, err := query.Products(params)
	if err != nil {
		return nil, 0, err
	}

	products, total, err := s.productRepo.List(ctx, q, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения каталога товаров", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении каталога")
	}

	cards := make([]projection.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, projection.Product(p))
	}

	return cards, total, nil
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id int64) (*projection.ProductCard, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения товара", zap.Int64("productId", id), zap.Error(err))
		return nil, errors.New("ошибка при получении товара")
	}

	// Неопубликованные товары в публичном каталоге неотличимы от несуществующих.
	if product.Status != domain.ProductStatusPublished {
		return nil, domain.ErrNotFound
	}

	card := projection.Product(*product)
	return &card, nil
}

func (s *CatalogServiceImpl) ListSpecialists(ctx context.Context, params url.Values, limit, offset int) ([]projection.SpecialistCard, int, error) {
	q, err := query.Specialists(params)
	if err != nil {
		return nil, 0, err
	}

	users, total, err := s.userRepo.ListSpecialists(ctx, q, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения каталога специалистов", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении каталога")
	}

	cards := make([]projection.SpecialistCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, projection.Specialist(u))
	}

	return cards, total, nil
}

func (s *CatalogServiceImpl) GetSpecialist(ctx context.Context, id int64) (*projection.SpecialistCard, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения специалиста", zap.Int64("userId", id), zap.Error(err))
		return nil, errors.New("ошибка при получении специалиста")
	}

	if user.Role != domain.UserRoleSpecialist || !user.IsActive {
		return nil, domain.ErrNotFound
	}

	card := projection.Specialist(*user)
	return &card, nil
}
