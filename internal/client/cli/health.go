package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runHealth(ctx context.Context) error {
	res, err := c.apiClient.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("server is unreachable: %w", err)
	}
	if !res.Code.IsSuccess() {
		return fmt.Errorf("server reported: %s", res.Code.Message())
	}

	c.io.Println("✓ Server is healthy")
	return nil
}
