package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func ptr[T any](v T) *T { return &v }

func TestEvents_MissingArgument(t *testing.T) {
	f := newFixture(nil, nil)

	err := f.cli.Run(context.Background(), "events", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: fallwatch events")
}

func TestEvents_InvalidDeviceID(t *testing.T) {
	f := newFixture(nil, nil)

	err := f.cli.Run(context.Background(), "events", []string{"wristband"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestEvents_Success(t *testing.T) {
	f := newFixture(nil, nil)
	authenticate(f)

	f.board.DeviceEventsFunc = func(ctx context.Context, deviceID int64) ([]pkgapi.Event, error) {
		return []pkgapi.Event{
			{
				ID:           42,
				Category:     pkgapi.CategoryFallDetected,
				HeartRateBPM: ptr(88),
				SpO2:         ptr(97),
				Latitude:     ptr(10.762622),
				Longitude:    ptr(106.660172),
			},
			{ID: 41, Category: pkgapi.CategoryNormal},
		}, nil
	}

	err := f.cli.Run(context.Background(), "events", []string{"3"})
	require.NoError(t, err)

	calls := f.board.DeviceEventsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(3), calls[0].DeviceID)

	out := f.out.String()
	assert.Contains(t, out, "Events of device 3")
	assert.Contains(t, out, "#42  Fall Detected")
	assert.Contains(t, out, "hr=88 bpm")
	assert.Contains(t, out, "spo2=97%")
	assert.Contains(t, out, "gps=(10.762622, 106.660172)")
	assert.Contains(t, out, "https://www.google.com/maps?q=10.762622,106.660172")
	assert.Contains(t, out, "#41  Normal")
}

func TestEvents_DeviceNotFound(t *testing.T) {
	f := newFixture(nil, nil)
	authenticate(f)

	f.board.DeviceEventsFunc = func(ctx context.Context, deviceID int64) ([]pkgapi.Event, error) {
		return nil, fmt.Errorf("failed to load events: %s", pkgapi.CodeDeviceNotFound.Message())
	}

	err := f.cli.Run(context.Background(), "events", []string{"99"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Device not found")
}

func TestFormatEvent_OmitsMissingSensors(t *testing.T) {
	line := formatEvent(pkgapi.Event{ID: 5, Category: pkgapi.CategoryLowHeartRate, HeartRateBPM: ptr(39)})

	assert.Equal(t, "#5  Low Heart Rate  hr=39 bpm", line)
}

func TestMapsLink_NoCoordinates(t *testing.T) {
	assert.Empty(t, mapsLink(pkgapi.Event{ID: 5, Latitude: ptr(10.0)}))
	assert.Empty(t, mapsLink(pkgapi.Event{ID: 5}))
}
