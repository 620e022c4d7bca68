package domain

import (
	"errors"
)

// Общая таксономия ошибок. Репозитории и сервисы оборачивают причины через
// fmt.Errorf("...: %w", err), транспортный слой сопоставляет их с HTTP-статусами
// ровно в одном месте.
var (
	ErrUnauthorized    = errors.New("требуется авторизация")
	ErrForbidden       = errors.New("доступ запрещен")
	ErrNotFound        = errors.New("ресурс не найден")
	ErrInvalidArgument = errors.New("некорректные параметры запроса")
	ErrProvider        = errors.New("ошибка внешнего видео-провайдера")
)
