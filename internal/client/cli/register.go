package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/fallwatch/internal/validation"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	// Discord user ID нужен серверу для уведомлений о падениях
	discordUserID, err := c.io.ReadInput("Discord user ID: ")
	if err != nil {
		return fmt.Errorf("failed to read discord user ID: %w", err)
	}
	if err := validation.ValidateDiscordUserID(discordUserID); err != nil {
		return err
	}

	// Запрашиваем пароль с подтверждением
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering user...")

	res, err := c.apiClient.RegisterUser(ctx, pkgapi.RegisterRequest{
		Username:      username,
		DiscordUserID: discordUserID,
		Password:      password,
	})
	if err != nil {
		return err
	}
	if !res.Code.IsSuccess() {
		return fmt.Errorf("registration failed: %s", res.Code.Message())
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	if res.Data != nil {
		c.io.Printf("User ID: %d\n", res.Data.ID)
		c.io.Printf("Username: %s\n", res.Data.Username)
	}
	c.io.Println()
	c.io.Println("Please run 'fallwatch login' to start using the service.")

	return nil
}
