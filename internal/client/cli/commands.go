package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand помечает нераспознанную команду, main по нему печатает usage
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду. Неизвестная команда возвращает ошибку,
// main печатает ее вместе с usage.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout()
	case "status":
		return c.runStatus(ctx)
	case "devices":
		return c.runDevices(ctx, args)
	case "events":
		return c.runEvents(ctx, args)
	case "dashboard":
		return c.runDashboard(ctx)
	case "health":
		return c.runHealth(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
