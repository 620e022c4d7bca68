package domain

// JoinToken — непрозрачный токен подключения к видео-комнате, выданный внешним
// провайдером. Срок жизни контролирует провайдер, сервис его не отслеживает.
type JoinToken struct {
	Token string `json:"token"`
	URL   string `json:"url,omitempty"`
}
