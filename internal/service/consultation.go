package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"arcana/config"
	"arcana/internal/domain"
	"arcana/internal/repository"
	"arcana/internal/video"
)

// Имя комнаты ограничено безопасным алфавитом, чтобы оно без экранирования
// попадало в grant токена и URL провайдера.
var roomNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

type participantMetadata struct {
	Role   domain.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`
}

type ConsultationServiceImpl struct {
	userRepo repository.UserRepository
	provider video.TokenProvider
	cfg      config.LiveKitConfig
	logger   *zap.Logger
}

func NewConsultationService(userRepo repository.UserRepository, provider video.TokenProvider, cfg config.LiveKitConfig, logger *zap.Logger) *ConsultationServiceImpl {
	return &ConsultationServiceImpl{
		userRepo: userRepo,
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *ConsultationServiceImpl) AuthorizeJoin(ctx context.Context, actorID int64, roomName string) (*domain.JoinToken, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthorized
	}

	if !roomNameRegexp.MatchString(roomName) {
		return nil, fmt.Errorf("%w: недопустимое имя комнаты", domain.ErrInvalidArgument)
	}

	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		s.logger.Warn("участник консультации не найден", zap.Int64("userId", actorID), zap.Error(err))
		return nil, domain.ErrUnauthorized
	}

	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	metadata, err := json.Marshal(participantMetadata{
		Role:   user.Role,
		Avatar: user.AvatarURL,
	})
	if err != nil {
		return nil, errors.New("ошибка формирования метаданных участника")
	}

	identity := video.Identity{
		ID:       user.ID,
		Name:     user.FullName(),
		Metadata: string(metadata),
	}

	token, err := s.provider.JoinToken(ctx, roomName, identity)
	if err != nil {
		s.logger.Error("ошибка выдачи токена подключения",
			zap.Int64("userId", actorID),
			zap.String("room", roomName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	return &domain.JoinToken{
		Token: token,
		URL:   s.cfg.URL,
	}, nil
}
