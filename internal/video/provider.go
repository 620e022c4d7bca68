// Package video выдает токены подключения к комнатам внешнего
// видео-провайдера. Сервис не ретранслирует медиа и не хранит состояние
// комнат: комната — это вычисляемая способность (имя + личность участника),
// обмениваемая на подписанный токен.
package video

import (
	"context"
)

// Identity — личность участника, попадающая в токен. ID берется из
// серверной сессии, никогда из параметров запроса.
type Identity struct {
	ID       int64
	Name     string
	Metadata string
}

// TokenProvider выдает подписанный, ограниченный по времени токен входа
// в названную комнату.
type TokenProvider interface {
	JoinToken(ctx context.Context, roomName string, identity Identity) (string, error)
}
