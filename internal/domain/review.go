package domain

import (
	"time"
)

// Review — общая форма отзыва для товаров и профилей специалистов.
type Review struct {
	ID         int64     `json:"id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Date       time.Time `json:"date"`
	ClientID   *int64    `json:"client_id,omitempty"`
}

type CreateReviewDTO struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Text       string `json:"text" binding:"required"`
	AuthorName string `json:"author_name" binding:"required"`
}
