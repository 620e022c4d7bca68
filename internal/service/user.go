package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"arcana/internal/domain"
	"arcana/internal/policy"
	"arcana/internal/repository"
	"arcana/pkg/auth"
	"arcana/pkg/validator"
)

type UserServiceImpl struct {
	repo     repository.UserRepository
	authRepo repository.AuthRepository
	logger   *zap.Logger
}

func NewUserService(repo repository.UserRepository, authRepo repository.AuthRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:     repo,
		authRepo: authRepo,
		logger:   logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения пользователя", zap.Int64("userId", id), zap.Error(err))
		return nil, errors.New("ошибка при получении пользователя")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, actor *domain.User, id int64, dto domain.UpdateUserDTO) (*domain.User, error) {
	if !policy.CanPerform(actor, policy.ActionUpdate, policy.KindUser, id) {
		return nil, domain.ErrForbidden
	}

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения пользователя", zap.Int64("userId", id), zap.Error(err))
		return nil, errors.New("ошибка при обновлении пользователя")
	}

	if dto.Specialist != nil && target.Role != domain.UserRoleSpecialist {
		return nil, fmt.Errorf("%w: профиль специалиста доступен только для роли specialist", domain.ErrInvalidArgument)
	}
	if dto.Cart != nil && target.Role != domain.UserRoleClient {
		return nil, fmt.Errorf("%w: корзина доступна только для роли client", domain.ErrInvalidArgument)
	}
	if dto.Email != nil && !validator.ValidateEmail(*dto.Email) {
		return nil, fmt.Errorf("%w: некорректный email", domain.ErrInvalidArgument)
	}
	if dto.Phone != nil && *dto.Phone != "" {
		if !validator.ValidatePhone(*dto.Phone) {
			return nil, fmt.Errorf("%w: некорректный номер телефона", domain.ErrInvalidArgument)
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}
	if dto.Surname != nil && !validator.ValidateNamePart(*dto.Surname) {
		return nil, fmt.Errorf("%w: некорректная фамилия", domain.ErrInvalidArgument)
	}
	if dto.Name != nil && !validator.ValidateNamePart(*dto.Name) {
		return nil, fmt.Errorf("%w: некорректное имя", domain.ErrInvalidArgument)
	}
	if dto.Specialist != nil && dto.Specialist.ServiceCost != nil {
		cost := dto.Specialist.ServiceCost
		if cost.Amount < 0 {
			return nil, fmt.Errorf("%w: стоимость услуг не может быть отрицательной", domain.ErrInvalidArgument)
		}
		if !cost.Currency.IsValid() {
			return nil, fmt.Errorf("%w: неподдерживаемая валюта", domain.ErrInvalidArgument)
		}
	}

	// Деактивация аккаунта доступна только модератору или администратору.
	if dto.IsActive != nil && actor.Role != domain.UserRoleModerator && actor.Role != domain.UserRoleAdmin {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("ошибка обновления пользователя", zap.Int64("userId", id), zap.Error(err))
		return nil, errors.New("ошибка при обновлении пользователя")
	}

	// Деактивированный аккаунт теряет все активные сессии сразу, а не по
	// истечении refresh-токена.
	if dto.IsActive != nil && !*dto.IsActive {
		if err := s.authRepo.DeleteSessionsByUserID(ctx, id); err != nil {
			s.logger.Error("ошибка отзыва сессий пользователя", zap.Int64("userId", id), zap.Error(err))
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения пользователя после обновления", zap.Int64("userId", id), zap.Error(err))
		return nil, errors.New("ошибка при обновлении пользователя")
	}

	return updated, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if actor == nil || !policy.CanPerform(actor, policy.ActionDelete, policy.KindUser, id) {
		return domain.ErrForbidden
	}

	if err := s.authRepo.DeleteSessionsByUserID(ctx, id); err != nil {
		s.logger.Error("ошибка отзыва сессий пользователя", zap.Int64("userId", id), zap.Error(err))
		return errors.New("ошибка при удалении пользователя")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления пользователя", zap.Int64("userId", id), zap.Error(err))
		return errors.New("ошибка при удалении пользователя")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, actorID int64, dto domain.PasswordUpdateDTO) error {
	if actorID == 0 {
		return domain.ErrUnauthorized
	}

	user, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		s.logger.Error("ошибка получения пользователя", zap.Int64("userId", actorID), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		return fmt.Errorf("%w: неверный текущий пароль", domain.ErrForbidden)
	}

	if !validator.ValidatePassword(dto.NewPassword) {
		return fmt.Errorf("%w: новый пароль слишком короткий", domain.ErrInvalidArgument)
	}

	hash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("ошибка хеширования пароля", zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	if err := s.repo.UpdatePassword(ctx, actorID, hash); err != nil {
		s.logger.Error("ошибка обновления пароля", zap.Int64("userId", actorID), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	return nil
}
