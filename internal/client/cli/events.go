package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func (c *Cli) runEvents(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fallwatch events <device-id>")
	}

	deviceID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid device ID %q: must be a number", args[0])
	}

	if _, err := c.authService.EnsureUser(ctx); err != nil {
		return err
	}

	events, err := c.dashboardService.DeviceEvents(ctx, deviceID)
	if err != nil {
		return err
	}

	c.io.Printf("=== Events of device %d ===\n", deviceID)
	c.io.Println()

	if len(events) == 0 {
		c.io.Println("No events recorded.")
		return nil
	}

	for _, event := range events {
		c.io.Printf("  %s\n", formatEvent(event))
		if link := mapsLink(event); link != "" {
			c.io.Printf("      map: %s\n", link)
		}
	}

	return nil
}

// formatEvent рендерит одну строку события. Отсутствующие у события
// сенсорные значения просто не печатаются.
func formatEvent(event pkgapi.Event) string {
	parts := []string{fmt.Sprintf("#%d  %s", event.ID, event.Category.Label())}

	if event.HeartRateBPM != nil {
		parts = append(parts, fmt.Sprintf("hr=%d bpm", *event.HeartRateBPM))
	}
	if event.SpO2 != nil {
		parts = append(parts, fmt.Sprintf("spo2=%d%%", *event.SpO2))
	}
	if event.Latitude != nil && event.Longitude != nil {
		parts = append(parts, fmt.Sprintf("gps=(%.6f, %.6f)", *event.Latitude, *event.Longitude))
	}

	return strings.Join(parts, "  ")
}

// mapsLink возвращает ссылку на карту для событий с координатами
func mapsLink(event pkgapi.Event) string {
	if event.Latitude == nil || event.Longitude == nil {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", *event.Latitude, *event.Longitude)
}
