// Package projection превращает сырые документы хранилища в плоские модели
// витрины. Функции тотальны: отсутствующие изображения и отзывы дают пустые
// значения, деления на ноль нет.
package projection

import (
	"math"
	"strconv"

	"arcana/internal/domain"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// stockStatus — единственное место, где живёт порог «нет в наличии».
func stockStatus(stock int) StockStatus {
	if stock <= 0 {
		return StockStatusOutOfStock
	}
	return StockStatusInStock
}

type Image struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type ProductCard struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Price          float64     `json:"price"`
	Currency       string      `json:"currency"`
	FormattedPrice string      `json:"formatted_price"`
	Stock          int         `json:"stock"`
	StockStatus    StockStatus `json:"stock_status"`
	CanAddToCart   bool        `json:"can_add_to_cart"`
	AverageRating  float64     `json:"average_rating"`
	RatingLabel    string      `json:"rating_label"`
	ReviewsCount   int         `json:"reviews_count"`
	Images         []Image     `json:"images"`
}

type SpecialistCard struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience"`
	ServiceCost    float64 `json:"service_cost"`
	Currency       string  `json:"currency"`
	FormattedCost  string  `json:"formatted_cost"`
	AverageRating  float64 `json:"average_rating"`
	RatingLabel    string  `json:"rating_label"`
	ReviewsCount   int     `json:"reviews_count"`
	AvatarURL      string  `json:"avatar_url,omitempty"`
}

// Product проецирует документ товара в карточку витрины.
func Product(p domain.Product) ProductCard {
	avg := AverageRating(p.Reviews)
	status := stockStatus(p.Stock)

	return ProductCard{
		ID:             p.ID,
		Title:          p.Title,
		Price:          p.Price,
		Currency:       string(p.Currency),
		FormattedPrice: FormatPrice(p.Price, p.Currency),
		Stock:          p.Stock,
		StockStatus:    status,
		// Кнопка «в корзину» управляется только производным статусом,
		// не сырым остатком.
		CanAddToCart:  status == StockStatusInStock,
		AverageRating: avg,
		RatingLabel:   FormatRating(avg, len(p.Reviews)),
		ReviewsCount:  len(p.Reviews),
		Images:        projectImages(p.Images),
	}
}

// Specialist проецирует пользователя-специалиста в карточку каталога.
// Для пользователя без данных специалиста поля остаются пустыми.
func Specialist(u domain.User) SpecialistCard {
	card := SpecialistCard{
		ID:        u.ID,
		FullName:  u.FullName(),
		AvatarURL: u.AvatarURL,
	}

	if u.Specialist == nil {
		card.RatingLabel = FormatRating(0, 0)
		return card
	}

	d := u.Specialist
	avg := AverageRating(d.Reviews)

	card.Specialization = d.Specialization
	card.Experience = d.Experience
	card.ServiceCost = d.ServiceCost.Amount
	card.Currency = string(d.ServiceCost.Currency)
	card.FormattedCost = FormatPrice(d.ServiceCost.Amount, d.ServiceCost.Currency)
	card.AverageRating = avg
	card.RatingLabel = FormatRating(avg, len(d.Reviews))
	card.ReviewsCount = len(d.Reviews)

	return card
}

// AverageRating — среднее арифметическое оценок; 0 при пустом списке.
// Округление происходит только при форматировании.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// FormatRating возвращает оценку с одним знаком после запятой,
// «—» при отсутствии отзывов.
func FormatRating(avg float64, reviewsCount int) string {
	if reviewsCount == 0 {
		return "—"
	}
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', 1, 64)
}

// FormatPrice форматирует цену по коду валюты. Неизвестный код не ломает
// форматирование — возвращается числовое значение без символа.
func FormatPrice(amount float64, currency domain.Currency) string {
	value := strconv.FormatFloat(amount, 'f', -1, 64)

	switch currency {
	case domain.CurrencyRUB:
		return value + " ₽"
	case domain.CurrencyUSD:
		return "$" + value
	case domain.CurrencyEUR:
		return "€" + value
	default:
		return value
	}
}

func projectImages(refs []domain.MediaRef) []Image {
	images := make([]Image, 0, len(refs))
	for _, ref := range refs {
		if ref.URL == "" {
			continue
		}
		images = append(images, Image{ID: ref.ID, URL: ref.URL, Alt: ref.Alt})
	}
	return images
}
