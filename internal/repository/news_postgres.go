package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arcana/internal/domain"
)

type NewsRepo struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepo {
	return &NewsRepo{
		db: db,
	}
}

const newsColumns = `
	id, title, slug, excerpt, content, cover, status, published_at, created_at, updated_at
`

func (r *NewsRepo) GetBySlug(ctx context.Context, slug string) (*domain.News, error) {
	sql := `SELECT ` + newsColumns + ` FROM news WHERE slug = $1 AND status = $2`

	news, err := r.scanNews(r.db.QueryRow(ctx, sql, slug, domain.NewsStatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения новости: %w", err)
	}

	return news, nil
}

func (r *NewsRepo) ListPublished(ctx context.Context, limit, offset int) ([]domain.News, int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM news WHERE status = $1`, domain.NewsStatusPublished,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета новостей: %w", err)
	}

	sql := `SELECT ` + newsColumns + `
		FROM news
		WHERE status = $1
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, sql, domain.NewsStatusPublished, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка новостей: %w", err)
	}
	defer rows.Close()

	var items []domain.News
	for rows.Next() {
		news, err := r.scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования новости: %w", err)
		}
		items = append(items, *news)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return items, total, nil
}

func (r *NewsRepo) scanNews(row pgx.Row) (*domain.News, error) {
	var (
		news      domain.News
		excerpt   *string
		content   []byte
		coverJSON []byte
	)

	err := row.Scan(
		&news.ID,
		&news.Title,
		&news.Slug,
		&excerpt,
		&content,
		&coverJSON,
		&news.Status,
		&news.PublishedAt,
		&news.CreatedAt,
		&news.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if excerpt != nil {
		news.Excerpt = *excerpt
	}
	news.Content = content

	if len(coverJSON) > 0 {
		var cover domain.MediaRef
		if err := json.Unmarshal(coverJSON, &cover); err != nil {
			return nil, fmt.Errorf("ошибка разбора обложки: %w", err)
		}
		news.Cover = &cover
	}

	return &news, nil
}
