package api

import (
	"context"

	"github.com/iudanet/fallwatch/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the gateway surface consumed by the session store,
// the dashboard service and the CLI commands.
type ClientAPI interface {
	// Token management (память + durable storage)

	// SetToken ставит токен в память и durable storage
	SetToken(token string)

	// ClearToken убирает токен отовсюду. Идемпотентна.
	ClearToken()

	// Token возвращает текущий bearer токен ("" если токена нет)
	Token() string

	// RestoreSession однократно восстанавливает токен из durable storage
	RestoreSession(ctx context.Context) error

	// Authentication endpoints

	// Login отправляет form-encoded учетные данные; при успехе сразу
	// устанавливает полученный токен через SetToken
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)

	// GetCurrentUser запрашивает профиль текущего пользователя ("who am I")
	GetCurrentUser(ctx context.Context) (*api.Result[*api.User], error)

	// User endpoints

	RegisterUser(ctx context.Context, req api.RegisterRequest) (*api.Result[*api.User], error)
	GetUser(ctx context.Context, id int64) (*api.Result[*api.User], error)

	// Device endpoints

	GetDevices(ctx context.Context) (*api.Result[[]api.Device], error)
	GetDevice(ctx context.Context, id int64) (*api.Result[*api.Device], error)
	CreateDevice(ctx context.Context, req api.CreateDeviceRequest) (*api.Result[*api.Device], error)
	GetDeviceEvents(ctx context.Context, deviceID int64) (*api.Result[[]api.Event], error)

	// Health check

	HealthCheck(ctx context.Context) (*api.Result[any], error)
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
