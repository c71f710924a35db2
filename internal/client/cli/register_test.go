package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func TestRegister_Success(t *testing.T) {
	f := newFixture([]string{"anh", "123456789012345678"}, []string{"secret-pass", "secret-pass"})

	f.apiClient.RegisterUserFunc = func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.Result[*pkgapi.User], error) {
		return &pkgapi.Result[*pkgapi.User]{
			Code: pkgapi.CodeSuccess,
			Data: &pkgapi.User{ID: 7, Username: req.Username},
		}, nil
	}

	err := f.cli.Run(context.Background(), "register", nil)
	require.NoError(t, err)

	calls := f.apiClient.RegisterUserCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "anh", calls[0].Req.Username)
	assert.Equal(t, "123456789012345678", calls[0].Req.DiscordUserID)
	assert.Equal(t, "secret-pass", calls[0].Req.Password)

	assert.Contains(t, f.out.String(), "Registration successful")
	assert.Contains(t, f.out.String(), "User ID: 7")
	assert.Contains(t, f.out.String(), "fallwatch login")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	f := newFixture([]string{"anh", "42"}, []string{"first", "second"})

	err := f.cli.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Empty(t, f.apiClient.RegisterUserCalls())
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
	}{
		{name: "bad username", inputs: []string{"a!", "42"}},
		{name: "bad discord id", inputs: []string{"anh", "not-a-number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.inputs, []string{"pw", "pw"})

			err := f.cli.Run(context.Background(), "register", nil)

			require.Error(t, err)
			// Валидация срабатывает до сетевого вызова
			assert.Empty(t, f.apiClient.RegisterUserCalls())
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newFixture([]string{"anh", "42"}, []string{"pw", "pw"})

	f.apiClient.RegisterUserFunc = func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.Result[*pkgapi.User], error) {
		return &pkgapi.Result[*pkgapi.User]{Code: pkgapi.CodeDuplicateUsername}, nil
	}

	err := f.cli.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username already exists")
}
