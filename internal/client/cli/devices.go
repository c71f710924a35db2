package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iudanet/fallwatch/internal/validation"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func (c *Cli) runDevices(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "add" {
		return c.runDeviceAdd(ctx)
	}
	return c.runDeviceList(ctx)
}

func (c *Cli) runDeviceList(ctx context.Context) error {
	if _, err := c.authService.EnsureUser(ctx); err != nil {
		return err
	}

	res, err := c.apiClient.GetDevices(ctx)
	if err != nil {
		return err
	}
	if !res.Code.IsSuccess() {
		return fmt.Errorf("failed to load devices: %s", res.Code.Message())
	}

	c.io.Println("=== Devices ===")
	c.io.Println()

	if len(res.Data) == 0 {
		c.io.Println("No devices registered.")
		c.io.Println("Run 'fallwatch devices add' to register one.")
		return nil
	}

	c.io.Printf("Total: %d\n", len(res.Data))
	c.io.Println()
	for _, device := range res.Data {
		c.io.Printf("  [%d] %s\n", device.ID, device.Name)
	}

	return nil
}

func (c *Cli) runDeviceAdd(ctx context.Context) error {
	if _, err := c.authService.EnsureUser(ctx); err != nil {
		return err
	}

	c.io.Println("=== Register Device ===")
	c.io.Println()

	name, err := c.io.ReadInput("Device name: ")
	if err != nil {
		return fmt.Errorf("failed to read device name: %w", err)
	}
	if err := validation.ValidateDeviceName(name); err != nil {
		return err
	}

	// Токен прошивается в устройство, которое затем подписывает им
	// отправку телеметрии
	token, err := c.io.ReadInput("Device token (leave empty to generate): ")
	if err != nil {
		return fmt.Errorf("failed to read device token: %w", err)
	}

	generated := false
	if token == "" {
		token = uuid.NewString()
		generated = true
	}

	res, err := c.apiClient.CreateDevice(ctx, pkgapi.CreateDeviceRequest{
		Name:  name,
		Token: token,
	})
	if err != nil {
		return err
	}
	if !res.Code.IsSuccess() {
		return fmt.Errorf("failed to register device: %s", res.Code.Message())
	}

	c.io.Println()
	c.io.Println("✓ Device registered!")
	if res.Data != nil {
		c.io.Printf("Device ID: %d\n", res.Data.ID)
		c.io.Printf("Name: %s\n", res.Data.Name)
	}
	if generated {
		c.io.Println()
		c.io.Printf("Generated device token: %s\n", token)
		c.io.Println("⚠️  Save this token now and flash it into the device.")
		c.io.Println("   The server stores only a hash, it cannot be shown again.")
	}

	return nil
}
