package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arcana/internal/domain"
	"arcana/internal/query"
)

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		db: db,
	}
}

const productColumns = `
	id, title, price, currency, stock, status, owner_id, images, reviews, created_at, updated_at
`

func (r *ProductRepo) Create(ctx context.Context, ownerID int64, dto domain.CreateProductDTO) (int64, error) {
	status := dto.Status
	if status == "" {
		status = domain.ProductStatusDraft
	}

	imagesJSON, err := json.Marshal(dto.Images)
	if err != nil {
		return 0, fmt.Errorf("ошибка сериализации изображений: %w", err)
	}

	sql := `
		INSERT INTO products (title, price, currency, stock, status, owner_id, images, reviews, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '[]'::jsonb, $8, $8)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(ctx, sql,
		dto.Title,
		dto.Price,
		dto.Currency,
		dto.Stock,
		status,
		ownerID,
		imagesJSON,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания товара: %w", err)
	}

	return id, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := r.scanProduct(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения товара: %w", err)
	}

	return product, nil
}

func (r *ProductRepo) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM products WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("ошибка получения владельца товара: %w", err)
	}

	return ownerID, nil
}

func (r *ProductRepo) Update(ctx context.Context, id int64, dto domain.UpdateProductDTO) error {
	var (
		setClauses []string
		args       []any
		argIndex   = 1
	)

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if dto.Title != nil {
		addSet("title", *dto.Title)
	}
	if dto.Price != nil {
		addSet("price", *dto.Price)
	}
	if dto.Currency != nil {
		addSet("currency", string(*dto.Currency))
	}
	if dto.Stock != nil {
		addSet("stock", *dto.Stock)
	}
	if dto.Status != nil {
		addSet("status", string(*dto.Status))
	}
	if dto.Images != nil {
		imagesJSON, err := json.Marshal(*dto.Images)
		if err != nil {
			return fmt.Errorf("ошибка сериализации изображений: %w", err)
		}
		addSet("images", imagesJSON)
	}

	if len(setClauses) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	sql := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argIndex)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления товара: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления товара: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ProductRepo) List(ctx context.Context, q query.Query, limit, offset int) ([]domain.Product, int, error) {
	where, args, argIndex := compileClauses(q.Clauses(), 1)

	countSQL := `SELECT COUNT(*) FROM products WHERE ` + where
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета товаров: %w", err)
	}

	sql := fmt.Sprintf(
		`SELECT %s FROM products WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, q.OrderBy(), argIndex, argIndex+1,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка товаров: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования товара: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		product     domain.Product
		imagesJSON  []byte
		reviewsJSON []byte
	)

	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Price,
		&product.Currency,
		&product.Stock,
		&product.Status,
		&product.OwnerID,
		&imagesJSON,
		&reviewsJSON,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &product.Images); err != nil {
			return nil, fmt.Errorf("ошибка разбора изображений: %w", err)
		}
	}
	if len(reviewsJSON) > 0 {
		if err := json.Unmarshal(reviewsJSON, &product.Reviews); err != nil {
			return nil, fmt.Errorf("ошибка разбора отзывов: %w", err)
		}
	}

	return &product, nil
}
