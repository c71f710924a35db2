package cli

import (
	"context"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	user, err := c.authService.EnsureUser(ctx)
	if err != nil {
		return err
	}

	overview, err := c.dashboardService.Overview(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Dashboard ===")
	c.io.Println()
	c.io.Printf("Welcome back, %s!\n", user.Username)
	c.io.Println()

	c.io.Printf("Devices: %d\n", len(overview.Devices))
	for _, device := range overview.Devices {
		c.io.Printf("  [%d] %s\n", device.ID, device.Name)
	}
	c.io.Println()

	if len(overview.RecentEvents) == 0 {
		c.io.Println("No recent events.")
		return nil
	}

	c.io.Println("Recent events:")
	for _, event := range overview.RecentEvents {
		c.io.Printf("  %s\n", formatEvent(event))
	}

	return nil
}
