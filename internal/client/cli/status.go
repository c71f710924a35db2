package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if c.apiClient.Token() == "" {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'fallwatch login' to authenticate.")
		return nil
	}

	// Подтверждаем токен запросом профиля. Отклоненный токен к этому
	// моменту уже сброшен сессией.
	user, err := c.authService.EnsureUser(ctx)
	if err != nil {
		c.io.Println("Status: Session expired")
		c.io.Println()
		c.io.Println("Run 'fallwatch login' to authenticate again.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("User ID: %d\n", user.ID)
	c.io.Printf("Username: %s\n", user.Username)

	// Срок действия читаем из exp клейма без проверки подписи,
	// ключ подписи есть только у сервера
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.apiClient.Token(), &claims); err == nil && claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	return nil
}
