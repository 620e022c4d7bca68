package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arcana/internal/domain"
)

type MediaRepo struct {
	db *pgxpool.Pool
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
	}
}

func (r *MediaRepo) Create(ctx context.Context, media domain.Media) (int64, error) {
	sql := `
		INSERT INTO media (owner_id, url, alt, mime_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		media.OwnerID,
		media.URL,
		media.Alt,
		media.MimeType,
		media.Size,
		media.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания записи медиа: %w", err)
	}

	return id, nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	sql := `
		SELECT id, owner_id, url, alt, mime_type, size, created_at
		FROM media
		WHERE id = $1
	`

	var media domain.Media
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&media.ID,
		&media.OwnerID,
		&media.URL,
		&media.Alt,
		&media.MimeType,
		&media.Size,
		&media.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения медиа: %w", err)
	}

	return &media, nil
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления медиа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
