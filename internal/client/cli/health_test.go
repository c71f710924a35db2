package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func TestHealth_Healthy(t *testing.T) {
	f := newFixture(nil, nil)

	f.apiClient.HealthCheckFunc = func(ctx context.Context) (*pkgapi.Result[any], error) {
		return &pkgapi.Result[any]{Code: pkgapi.CodeSuccess}, nil
	}

	err := f.cli.Run(context.Background(), "health", nil)

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Server is healthy")
}

func TestHealth_Unreachable(t *testing.T) {
	f := newFixture(nil, nil)

	f.apiClient.HealthCheckFunc = func(ctx context.Context) (*pkgapi.Result[any], error) {
		return nil, fmt.Errorf("connection refused")
	}

	err := f.cli.Run(context.Background(), "health", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server is unreachable")
}
