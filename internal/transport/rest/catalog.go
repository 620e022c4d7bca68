package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func pagination(c *gin.Context) (page, pageSize, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize, (page - 1) * pageSize
}

// @Summary Каталог товаров
// @Description Возвращает опубликованные товары с фильтрами и сортировкой
// @Tags Каталог
// @Produce json
// @Param search query string false "Поиск по названию"
// @Param minPrice query number false "Минимальная цена"
// @Param maxPrice query number false "Максимальная цена"
// @Param sort query string false "Сортировка: price_asc, price_desc"
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} paginatedResponse "Карточки товаров"
// @Failure 422 {object} errorResponseBody "Некорректные параметры фильтра"
// @Router /catalog/products [get]
func (h *Handler) getCatalogProducts(c *gin.Context) {
	page, pageSize, offset := pagination(c)

	cards, total, err := h.services.Catalog.ListProducts(c.Request.Context(), c.Request.URL.Query(), pageSize, offset)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, cards, total, page, pageSize)
}

// @Summary Карточка товара
// @Description Возвращает опубликованный товар по ID
// @Tags Каталог
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} projection.ProductCard "Карточка товара"
// @Failure 404 {object} errorResponseBody "Товар не найден"
// @Router /catalog/products/{id} [get]
func (h *Handler) getCatalogProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID товара")
		return
	}

	card, err := h.services.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, card)
}

// @Summary Каталог специалистов
// @Description Возвращает специалистов с фильтрами и сортировкой
// @Tags Каталог
// @Produce json
// @Param search query string false "Поиск по имени, фамилии или специализации"
// @Param minPrice query number false "Минимальная стоимость услуг"
// @Param maxPrice query number false "Максимальная стоимость услуг"
// @Param minExperience query int false "Минимальный опыт, лет"
// @Param sort query string false "Сортировка: price_asc, price_desc, experience_desc"
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} paginatedResponse "Карточки специалистов"
// @Failure 422 {object} errorResponseBody "Некорректные параметры фильтра"
// @Router /catalog/specialists [get]
func (h *Handler) getCatalogSpecialists(c *gin.Context) {
	page, pageSize, offset := pagination(c)

	cards, total, err := h.services.Catalog.ListSpecialists(c.Request.Context(), c.Request.URL.Query(), pageSize, offset)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, cards, total, page, pageSize)
}

// @Summary Карточка специалиста
// @Description Возвращает активного специалиста по ID
// @Tags Каталог
// @Produce json
// @Param id path int true "ID специалиста"
// @Success 200 {object} projection.SpecialistCard "Карточка специалиста"
// @Failure 404 {object} errorResponseBody "Специалист не найден"
// @Router /catalog/specialists/{id} [get]
func (h *Handler) getCatalogSpecialistByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID специалиста")
		return
	}

	card, err := h.services.Catalog.GetSpecialist(c.Request.Context(), id)
	if err != nil {
		h.logger.Debug("специалист не найден", zap.Int64("id", id), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, card)
}
