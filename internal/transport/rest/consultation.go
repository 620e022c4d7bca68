package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type joinConsultationRequest struct {
	Room string `json:"room" binding:"required"`
}

// @Summary Подключиться к консультации
// @Description Выдает токен подключения к видео-комнате. Личность участника берется из сессии
// @Tags Консультации
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body joinConsultationRequest true "Имя комнаты"
// @Success 200 {object} domain.JoinToken "Токен подключения"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 422 {object} errorResponseBody "Недопустимое имя комнаты"
// @Failure 502 {object} errorResponseBody "Ошибка видео-провайдера"
// @Router /consultation/join [post]
func (h *Handler) joinConsultation(c *gin.Context) {
	var input joinConsultationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.services.Consultation.AuthorizeJoin(c.Request.Context(), userID, input.Room)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, token)
}
