package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	httpClient "github.com/iudanet/fallwatch/internal/client/api"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

// ErrNotAuthenticated возвращается guard'ом, когда защищенная операция
// запрошена без действующей сессии
var ErrNotAuthenticated = errors.New("not authenticated, run 'fallwatch login' first")

// Session реализует Service поверх HTTP gateway.
// Инвариант: ненулевой user означает, что gateway держит токен, который
// сервер принял при последнем Refresh. Это гарантия на момент проверки:
// отозванный позже токен будет погашен перехватчиком 401 в gateway.
type Session struct {
	gateway httpClient.ClientAPI
	logger  *slog.Logger
	mu      sync.Mutex
	user    *pkgapi.User
	// resolving поднят до первого завершенного Refresh
	resolving bool
}

// Compile-time check that Session implements Service
var _ Service = (*Session)(nil)

// NewSession создает session store в состоянии "разрешается":
// пользователя нет, пока первый Refresh не завершится.
func NewSession(gateway httpClient.ClientAPI, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		gateway:   gateway,
		logger:    logger,
		resolving: true,
	}
}

// Refresh обновляет сессию запросом "who am I".
// Токен, не прошедший проверку личности, считается невалидным, а не
// временно недоступным, и сбрасывается — пользователю придется войти заново.
func (s *Session) Refresh(ctx context.Context) {
	defer s.setResolving(false)

	if s.gateway.Token() == "" {
		// Без токена сессии нет, сетевой вызов не нужен
		s.setUser(nil)
		return
	}

	res, err := s.gateway.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Warn("failed to resolve session", "error", err)
		s.setUser(nil)
		s.gateway.ClearToken()
		return
	}

	if !res.Code.IsSuccess() || res.Data == nil {
		s.logger.Warn("identity check rejected", "code", int(res.Code), "message", res.Code.Message())
		s.setUser(nil)
		s.gateway.ClearToken()
		return
	}

	s.setUser(res.Data)
}

// Login выполняет логин через gateway и затем безусловный Refresh
func (s *Session) Login(ctx context.Context, username, password string) error {
	if _, err := s.gateway.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s.Refresh(ctx)
	return nil
}

// Logout синхронно гасит сессию без обращения к серверу
func (s *Session) Logout() {
	s.gateway.ClearToken()

	s.mu.Lock()
	s.user = nil
	s.resolving = false
	s.mu.Unlock()
}

// CurrentUser возвращает текущего пользователя (nil если не авторизован)
func (s *Session) CurrentUser() *pkgapi.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Resolving сообщает, разрешается ли сессия прямо сейчас
func (s *Session) Resolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolving
}

// EnsureUser — guard защищенных операций: пока сессия не разрешена,
// защищенный вывод не производится; без пользователя возвращается
// ErrNotAuthenticated (CLI-аналог редиректа на /login).
func (s *Session) EnsureUser(ctx context.Context) (*pkgapi.User, error) {
	if s.Resolving() {
		s.Refresh(ctx)
	}

	if user := s.CurrentUser(); user != nil {
		return user, nil
	}

	return nil, ErrNotAuthenticated
}

func (s *Session) setUser(user *pkgapi.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

func (s *Session) setResolving(resolving bool) {
	s.mu.Lock()
	s.resolving = resolving
	s.mu.Unlock()
}
