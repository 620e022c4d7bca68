package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Список новостей
// @Description Возвращает опубликованные новости, новые сверху
// @Tags Новости
// @Produce json
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} paginatedResponse "Новости"
// @Router /news [get]
func (h *Handler) getNews(c *gin.Context) {
	page, pageSize, offset := pagination(c)

	news, total, err := h.services.News.List(c.Request.Context(), pageSize, offset)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, news, total, page, pageSize)
}

// @Summary Новость по slug
// @Description Возвращает опубликованную новость
// @Tags Новости
// @Produce json
// @Param slug path string true "Slug новости"
// @Success 200 {object} domain.News "Новость"
// @Failure 404 {object} errorResponseBody "Новость не найдена"
// @Router /news/{slug} [get]
func (h *Handler) getNewsBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		badRequestResponse(c, "пустой slug новости")
		return
	}

	news, err := h.services.News.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, news)
}
