package api

// TokenResponse представляет ответ сервера на успешный логин
type TokenResponse struct {
	AccessToken string `json:"access_token"` // bearer токен (JWT)
	TokenType   string `json:"token_type"`   // всегда "bearer"
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username      string `json:"username"`        // username пользователя
	DiscordUserID string `json:"discord_user_id"` // Discord user ID (decimal snowflake)
	Password      string `json:"password"`        // пароль в открытом виде
}

// CreateDeviceRequest представляет запрос на регистрацию устройства
type CreateDeviceRequest struct {
	Name  string `json:"name"`  // человекочитаемое имя устройства
	Token string `json:"token"` // секретный токен устройства (хешируется сервером)
}
