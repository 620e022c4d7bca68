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

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

const userColumns = `
	id, surname, name, patronymic, email, phone, password_hash, role, avatar_url,
	specialization, experience, biography, service_cost_amount, service_cost_currency,
	reviews, cart, is_active, created_at, updated_at
`

func (r *UserRepo) Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error) {
	sql := `
		INSERT INTO users (surname, name, patronymic, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		dto.Surname,
		dto.Name,
		dto.Patronymic,
		dto.Email,
		passwordHash,
		dto.Role,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по email: %w", err)
	}

	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
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

	if dto.Surname != nil {
		addSet("surname", *dto.Surname)
	}
	if dto.Name != nil {
		addSet("name", *dto.Name)
	}
	if dto.Patronymic != nil {
		addSet("patronymic", *dto.Patronymic)
	}
	if dto.Email != nil {
		addSet("email", *dto.Email)
	}
	if dto.Phone != nil {
		addSet("phone", *dto.Phone)
	}
	if dto.AvatarURL != nil {
		addSet("avatar_url", *dto.AvatarURL)
	}
	if dto.IsActive != nil {
		addSet("is_active", *dto.IsActive)
	}

	if dto.Specialist != nil {
		d := dto.Specialist
		if d.Specialization != nil {
			addSet("specialization", *d.Specialization)
		}
		if d.Experience != nil {
			addSet("experience", *d.Experience)
		}
		if d.Biography != nil {
			addSet("biography", []byte(d.Biography))
		}
		if d.ServiceCost != nil {
			addSet("service_cost_amount", d.ServiceCost.Amount)
			addSet("service_cost_currency", string(d.ServiceCost.Currency))
		}
	}

	if dto.Cart != nil {
		cartJSON, err := json.Marshal(*dto.Cart)
		if err != nil {
			return fmt.Errorf("ошибка сериализации корзины: %w", err)
		}
		addSet("cart", cartJSON)
	}

	if len(setClauses) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	sql := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argIndex)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	sql := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, sql, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления пароля: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepo) ListSpecialists(ctx context.Context, q query.Query, limit, offset int) ([]domain.User, int, error) {
	where, args, argIndex := compileClauses(q.Clauses(), 1)

	countSQL := `SELECT COUNT(*) FROM users WHERE ` + where
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета специалистов: %w", err)
	}

	sql := fmt.Sprintf(
		`SELECT %s FROM users WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		userColumns, where, q.OrderBy(), argIndex, argIndex+1,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка специалистов: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования специалиста: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return users, total, nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user            domain.User
		patronymic      *string
		phone           *string
		avatarURL       *string
		specialization  *string
		experience      *int
		biography       []byte
		costAmount      *float64
		costCurrency    *string
		reviewsJSON     []byte
		cartJSON        []byte
	)

	err := row.Scan(
		&user.ID,
		&user.Surname,
		&user.Name,
		&patronymic,
		&user.Email,
		&phone,
		&user.PasswordHash,
		&user.Role,
		&avatarURL,
		&specialization,
		&experience,
		&biography,
		&costAmount,
		&costCurrency,
		&reviewsJSON,
		&cartJSON,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if patronymic != nil {
		user.Patronymic = *patronymic
	}
	if phone != nil {
		user.Phone = *phone
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}

	if user.Role == domain.UserRoleSpecialist {
		details := &domain.SpecialistDetails{
			Biography: biography,
		}
		if specialization != nil {
			details.Specialization = *specialization
		}
		if experience != nil {
			details.Experience = *experience
		}
		if costAmount != nil {
			details.ServiceCost.Amount = *costAmount
		}
		if costCurrency != nil {
			details.ServiceCost.Currency = domain.Currency(*costCurrency)
		}
		if len(reviewsJSON) > 0 {
			if err := json.Unmarshal(reviewsJSON, &details.Reviews); err != nil {
				return nil, fmt.Errorf("ошибка разбора отзывов: %w", err)
			}
		}
		user.Specialist = details
	}

	if user.Role == domain.UserRoleClient && len(cartJSON) > 0 {
		if err := json.Unmarshal(cartJSON, &user.Cart); err != nil {
			return nil, fmt.Errorf("ошибка разбора корзины: %w", err)
		}
	}

	return &user, nil
}
