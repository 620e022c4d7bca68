package service

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"arcana/config"
	"arcana/internal/domain"
	"arcana/internal/projection"
	"arcana/internal/repository"
	"arcana/internal/storage"
	"arcana/internal/video"
)

type Deps struct {
	Repos         *repository.Repositories
	Logger        *zap.Logger
	Config        *config.Config
	FileStorage   storage.FileStorage
	VideoProvider video.TokenProvider
}

type Services struct {
	Auth         AuthService
	User         UserService
	Catalog      CatalogService
	Product      ProductService
	Media        MediaService
	News         NewsService
	Consultation ConsultationService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		User:         NewUserService(deps.Repos.User, deps.Repos.Auth, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Product, deps.Repos.User, deps.Logger),
		Product:      NewProductService(deps.Repos.Product, deps.Logger),
		Media:        NewMediaService(deps.Repos.Media, deps.FileStorage, deps.Logger),
		News:         NewNewsService(deps.Repos.News, deps.Logger),
		Consultation: NewConsultationService(deps.Repos.User, deps.VideoProvider, deps.Config.LiveKit, deps.Logger),
	}
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id int64, dto domain.UpdateUserDTO) (*domain.User, error)
	UpdatePassword(ctx context.Context, actorID int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

type CatalogService interface {
	ListProducts(ctx context.Context, params url.Values, limit, offset int) ([]projection.ProductCard, int, error)
	GetProduct(ctx context.Context, id int64) (*projection.ProductCard, error)
	ListSpecialists(ctx context.Context, params url.Values, limit, offset int) ([]projection.SpecialistCard, int, error)
	GetSpecialist(ctx context.Context, id int64) (*projection.SpecialistCard, error)
}

type ProductService interface {
	Create(ctx context.Context, actor *domain.User, dto domain.CreateProductDTO) (*projection.ProductCard, error)
	Update(ctx context.Context, actor *domain.User, id int64, dto domain.UpdateProductDTO) (*projection.ProductCard, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

type MediaService interface {
	Upload(ctx context.Context, actor *domain.User, data []byte, filename, alt string) (*domain.Media, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

type NewsService interface {
	List(ctx context.Context, limit, offset int) ([]domain.News, int, error)
	GetBySlug(ctx context.Context, slug string) (*domain.News, error)
}

type ConsultationService interface {
	AuthorizeJoin(ctx context.Context, actorID int64, roomName string) (*domain.JoinToken, error)
}
