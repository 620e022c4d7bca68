package domain

import (
	"time"
)

type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusPublished ProductStatus = "published"
)

func (s ProductStatus) IsValid() bool {
	return s == ProductStatusDraft || s == ProductStatusPending || s == ProductStatusPublished
}

// MediaRef — слабая ссылка на объект медиа-хранилища. Сами файлы живут в S3,
// здесь хранится только идентификатор и снимок URL для отдачи витрине.
type MediaRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type Product struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Price     float64       `json:"price"`
	Currency  Currency      `json:"currency"`
	Stock     int           `json:"stock"`
	Status    ProductStatus `json:"status"`
	OwnerID   int64         `json:"owner_id"`
	Images    []MediaRef    `json:"images"`
	Reviews   []Review      `json:"reviews"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateProductDTO struct {
	Title    string        `json:"title" binding:"required"`
	Price    float64       `json:"price" binding:"required,gt=0"`
	Currency Currency      `json:"currency" binding:"required,oneof=RUB USD EUR"`
	Stock    int           `json:"stock" binding:"min=0"`
	Status   ProductStatus `json:"status" binding:"omitempty,oneof=draft pending published"`
	Images   []MediaRef    `json:"images"`
}

type UpdateProductDTO struct {
	Title    *string        `json:"title"`
	Price    *float64       `json:"price" binding:"omitempty,gt=0"`
	Currency *Currency      `json:"currency" binding:"omitempty,oneof=RUB USD EUR"`
	Stock    *int           `json:"stock" binding:"omitempty,min=0"`
	Status   *ProductStatus `json:"status" binding:"omitempty,oneof=draft pending published"`
	Images   *[]MediaRef    `json:"images"`
}
