package rest

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Загрузить файл
// @Description Загружает изображение в медиа-хранилище
// @Tags Медиа
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл изображения"
// @Param alt formData string false "Альтернативный текст"
// @Success 201 {object} domain.Media "Метаданные загруженного файла"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Недостаточно прав"
// @Failure 422 {object} errorResponseBody "Неподдерживаемый файл"
// @Router /media [post]
func (h *Handler) uploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("ошибка открытия файла", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("ошибка чтения файла", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	actor, err := h.currentActor(c)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	media, err := h.services.Media.Upload(c.Request.Context(), actor, data, fileHeader.Filename, c.PostForm("alt"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, media)
}

// @Summary Удалить файл
// @Description Удаляет файл владельца или от имени модератора
// @Tags Медиа
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID файла"
// @Success 204 "Файл удален"
// @Failure 403 {object} errorResponseBody "Недостаточно прав"
// @Failure 404 {object} errorResponseBody "Файл не найден"
// @Router /media/{id} [delete]
func (h *Handler) deleteMedia(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID файла")
		return
	}

	actor, err := h.currentActor(c)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if err := h.services.Media.Delete(c.Request.Context(), actor, id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
