package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/policy"
	"arcana/internal/projection"
	"arcana/internal/repository"
)

type ProductServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) *ProductServiceImpl {
	return &ProductServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, actor *domain.User, dto domain.CreateProductDTO) (*projection.ProductCard, error) {
	if actor == nil || !policy.CanPerform(actor, policy.ActionCreate, policy.KindProduct, actor.ID) {
		return nil, domain.ErrForbidden
	}

	if dto.Price < 0 {
		return nil, fmt.Errorf("%w: цена не может быть отрицательной", domain.ErrInvalidArgument)
	}
	if !dto.Currency.IsValid() {
		return nil, fmt.Errorf("%w: неподдерживаемая валюта", domain.ErrInvalidArgument)
	}

	id, err := s.repo.Create(ctx, actor.ID, dto)
	if err != nil {
		s.logger.Error("ошибка создания товара", zap.Int64("ownerId", actor.ID), zap.Error(err))
		return nil, errors.New("ошибка при создании товара")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения товара после создания", zap.Int64("productId", id), zap.Error(err))
		return nil, errors.New("ошибка при создании товара")
	}

	card := projection.Product(*product)
	return &card, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, actor *domain.User, id int64, dto domain.UpdateProductDTO) (*projection.ProductCard, error) {
	if err := s.authorizeMutation(ctx, actor, policy.ActionUpdate, id); err != nil {
		return nil, err
	}

	if dto.Price != nil && *dto.Price < 0 {
		return nil, fmt.Errorf("%w: цена не может быть отрицательной", domain.ErrInvalidArgument)
	}
	if dto.Currency != nil && !dto.Currency.IsValid() {
		return nil, fmt.Errorf("%w: неподдерживаемая валюта", domain.ErrInvalidArgument)
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка обновления товара", zap.Int64("productId", id), zap.Error(err))
		return nil, errors.New("ошибка при обновлении товара")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения товара после обновления", zap.Int64("productId", id), zap.Error(err))
		return nil, errors.New("ошибка при обновлении товара")
	}

	card := projection.Product(*product)
	return &card, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if err := s.authorizeMutation(ctx, actor, policy.ActionDelete, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления товара", zap.Int64("productId", id), zap.Error(err))
		return errors.New("ошибка при удалении товара")
	}

	return nil
}

// authorizeMutation разрешает изменение товара до обращения к данным самого
// товара. Владелец определяется отдельным запросом, и при любой ошибке
// определения непривилегированный актор получает отказ в доступе, а не
// сведения о существовании товара.
func (s *ProductServiceImpl) authorizeMutation(ctx context.Context, actor *domain.User, action policy.Action, id int64) error {
	// Анонимная мутация отклоняется до любого обращения к хранилищу.
	if actor == nil {
		return domain.ErrForbidden
	}

	ownerID, err := s.repo.GetOwnerID(ctx, id)
	if err != nil {
		if actor.Role == domain.UserRoleModerator {
			if errors.Is(err, domain.ErrNotFound) {
				return err
			}
			s.logger.Error("ошибка определения владельца товара", zap.Int64("productId", id), zap.Error(err))
			return errors.New("ошибка при проверке доступа")
		}
		return domain.ErrForbidden
	}

	if !policy.CanPerform(actor, action, policy.KindProduct, ownerID) {
		return domain.ErrForbidden
	}

	return nil
}
