package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.authService.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if user := c.authService.CurrentUser(); user != nil {
		c.io.Printf("Username: %s\n", user.Username)
	}
	c.io.Println()
	c.io.Println("Your session has been saved locally.")

	return nil
}
