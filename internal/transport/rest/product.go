package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arcana/internal/domain"
)

// @Summary Создать товар
// @Description Создает товар от имени текущего специалиста
// @Tags Товары
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateProductDTO true "Данные товара"
// @Success 201 {object} projection.ProductCard "Карточка созданного товара"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Недостаточно прав"
// @Failure 422 {object} errorResponseBody "Некорректные данные"
// @Router /products [post]
func (h *Handler) createProduct(c *gin.Context) {
	var input domain.CreateProductDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	actor, err := h.currentActor(c)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	card, err := h.services.Product.Create(c.Request.Context(), actor, input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, card)
}

// @Summary Обновить товар
// @Description Обновляет товар владельца или от имени модератора
// @Tags Товары
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID товара"
// @Param input body domain.UpdateProductDTO true "Изменяемые поля"
// @Success 200 {object} projection.ProductCard "Карточка обновленного товара"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Недостаточно прав"
// @Failure 404 {object} errorResponseBody "Товар не найден"
// @Router /products/{id} [put]
func (h *Handler) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID товара")
		return
	}

	var input domain.UpdateProductDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	actor, err := h.currentActor(c)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	card, err := h.services.Product.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, card)
}

// @Summary Удалить товар
// @Description Удаляет товар владельца или от имени модератора
// @Tags Товары
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID товара"
// @Success 204 "Товар удален"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Недостаточно прав"
// @Failure 404 {object} errorResponseBody "Товар не найден"
// @Router /products/{id} [delete]
func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID товара")
		return
	}

	actor, err := h.currentActor(c)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if err := h.services.Product.Delete(c.Request.Context(), actor, id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
