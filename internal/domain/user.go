package domain

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	UserRoleClient     UserRole = "client"
	UserRoleSpecialist UserRole = "specialist"
	UserRoleModerator  UserRole = "moderator"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleClient || r == UserRoleSpecialist || r == UserRoleModerator || r == UserRoleAdmin
}

type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) IsValid() bool {
	return c == CurrencyRUB || c == CurrencyUSD || c == CurrencyEUR
}

type ServiceCost struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// SpecialistDetails заполняется только для пользователей с ролью specialist.
type SpecialistDetails struct {
	Specialization string          `json:"specialization"`
	Experience     int             `json:"experience"`
	Biography      json.RawMessage `json:"biography,omitempty"`
	ServiceCost    ServiceCost     `json:"service_cost"`
	Reviews        []Review        `json:"reviews"`
}

// CartItem имеет смысл только для пользователей с ролью client.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type User struct {
	ID           int64              `json:"id"`
	Surname      string             `json:"surname"`
	Name         string             `json:"name"`
	Patronymic   string             `json:"patronymic,omitempty"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone,omitempty"`
	PasswordHash string             `json:"-"`
	Role         UserRole           `json:"role"`
	AvatarURL    string             `json:"avatar_url,omitempty"`
	Specialist   *SpecialistDetails `json:"specialist_details,omitempty"`
	Cart         []CartItem         `json:"cart,omitempty"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.Patronymic != "" {
		return u.Surname + " " + u.Name + " " + u.Patronymic
	}
	return u.Surname + " " + u.Name
}

type CreateUserDTO struct {
	Surname    string   `json:"surname" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Patronymic string   `json:"patronymic"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Role       UserRole `json:"role" binding:"required,oneof=client specialist"`
}

type UpdateUserDTO struct {
	Surname    *string                     `json:"surname"`
	Name       *string                     `json:"name"`
	Patronymic *string                     `json:"patronymic"`
	Email      *string                     `json:"email" binding:"omitempty,email"`
	Phone      *string                     `json:"phone"`
	AvatarURL  *string                     `json:"avatar_url"`
	Specialist *UpdateSpecialistDetailsDTO `json:"specialist_details"`
	Cart       *[]CartItem                 `json:"cart"`
	IsActive   *bool                       `json:"is_active"`
}

type UpdateSpecialistDetailsDTO struct {
	Specialization *string         `json:"specialization"`
	Experience     *int            `json:"experience" binding:"omitempty,min=0"`
	Biography      json.RawMessage `json:"biography"`
	ServiceCost    *ServiceCost    `json:"service_cost"`
}
