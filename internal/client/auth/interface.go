package auth

import (
	"context"

	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the session store interface.
// Сессия — производное состояние: профиль текущего пользователя,
// подтвержденный сервером по токену на момент последнего Refresh.
type Service interface {
	// Refresh обновляет сессию запросом "who am I".
	// Без токена сразу завершается без сетевого вызова. Любой неуспешный
	// исход (ошибка транспорта, ненулевой код, пустой payload) обнуляет
	// пользователя И сбрасывает токен. Идемпотентна.
	Refresh(ctx context.Context)

	// Login выполняет логин через gateway и затем безусловный Refresh.
	// При ошибке логина состояние сессии не меняется.
	Login(ctx context.Context, username, password string) error

	// Logout синхронно сбрасывает токен и пользователя. Без вызова сервера.
	Logout()

	// CurrentUser возвращает текущего пользователя (nil если не авторизован)
	CurrentUser() *pkgapi.User

	// Resolving сообщает, разрешается ли сессия прямо сейчас
	Resolving() bool

	// EnsureUser разрешает сессию (если нужно) и возвращает пользователя
	// либо ErrNotAuthenticated
	EnsureUser(ctx context.Context) (*pkgapi.User, error)
}
