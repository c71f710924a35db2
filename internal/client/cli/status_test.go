package cli

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fallwatch/internal/client/auth"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

// unsignedToken выпускает JWT с алгоритмом none. Для runStatus этого
// достаточно, exp читается без проверки подписи.
func unsignedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func TestStatus_NotAuthenticated(t *testing.T) {
	f := newFixture(nil, nil)
	f.apiClient.TokenFunc = func() string { return "" }

	err := f.cli.Run(context.Background(), "status", nil)

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Status: Not authenticated")
	// Без токена who-am-I не запрашивается
	assert.Empty(t, f.session.EnsureUserCalls())
}

func TestStatus_Authenticated(t *testing.T) {
	f := newFixture(nil, nil)
	token := unsignedToken(t, time.Now().Add(30*time.Minute))

	f.apiClient.TokenFunc = func() string { return token }
	f.session.EnsureUserFunc = func(ctx context.Context) (*pkgapi.User, error) {
		return &pkgapi.User{ID: 7, Username: "anh"}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "Status: Authenticated")
	assert.Contains(t, out, "Username: anh")
	assert.Contains(t, out, "Token expires:")
	assert.Contains(t, out, "Time remaining:")
}

func TestStatus_ExpiredToken(t *testing.T) {
	f := newFixture(nil, nil)
	token := unsignedToken(t, time.Now().Add(-time.Hour))

	f.apiClient.TokenFunc = func() string { return token }
	f.session.EnsureUserFunc = func(ctx context.Context) (*pkgapi.User, error) {
		return &pkgapi.User{ID: 7, Username: "anh"}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "Token has expired")
}

func TestStatus_SessionRejected(t *testing.T) {
	f := newFixture(nil, nil)

	f.apiClient.TokenFunc = func() string { return "stale-token" }
	f.session.EnsureUserFunc = func(ctx context.Context) (*pkgapi.User, error) {
		return nil, auth.ErrNotAuthenticated
	}

	err := f.cli.Run(context.Background(), "status", nil)

	// Отклоненная сессия для status не ошибка, а состояние
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Status: Session expired")
}
