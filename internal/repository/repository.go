package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"arcana/internal/domain"
	"arcana/internal/query"
)

type Repositories struct {
	User    UserRepository
	Product ProductRepository
	News    NewsRepository
	Media   MediaRepository
	Auth    AuthRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Product: NewProductRepository(db),
		News:    NewNewsRepository(db),
		Media:   NewMediaRepository(db),
		Auth:    NewAuthRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	ListSpecialists(ctx context.Context, q query.Query, limit, offset int) ([]domain.User, int, error)
}

type ProductRepository interface {
	Create(ctx context.Context, ownerID int64, dto domain.CreateProductDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetOwnerID(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProductDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q query.Query, limit, offset int) ([]domain.Product, int, error)
}

type NewsRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.News, error)
	ListPublished(ctx context.Context, limit, offset int) ([]domain.News, int, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media domain.Media) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Media, error)
	Delete(ctx context.Context, id int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}
