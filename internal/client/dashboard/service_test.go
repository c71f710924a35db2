package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/fallwatch/internal/client/api"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

func eventsWithIDs(ids ...int64) []pkgapi.Event {
	events := make([]pkgapi.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, pkgapi.Event{ID: id})
	}
	return events
}

func eventIDs(events []pkgapi.Event) []int64 {
	ids := make([]int64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	return ids
}

func TestService_Overview_MergeSortTruncate(t *testing.T) {
	// Два устройства: D1 с событиями [5, 3], D2 с событиями [9, 1].
	// Объединенный результат: [9, 5, 3, 1] — по ID по убыванию.
	perDevice := map[int64][]pkgapi.Event{
		1: eventsWithIDs(5, 3),
		2: eventsWithIDs(9, 1),
	}

	gateway := &httpClient.ClientAPIMock{
		GetDevicesFunc: func(ctx context.Context) (*pkgapi.Result[[]pkgapi.Device], error) {
			return &pkgapi.Result[[]pkgapi.Device]{
				Code: pkgapi.CodeSuccess,
				Data: []pkgapi.Device{{ID: 1, Name: "D1"}, {ID: 2, Name: "D2"}},
			}, nil
		},
		GetDeviceEventsFunc: func(ctx context.Context, deviceID int64) (*pkgapi.Result[[]pkgapi.Event], error) {
			return &pkgapi.Result[[]pkgapi.Event]{
				Code: pkgapi.CodeSuccess,
				Data: perDevice[deviceID],
			}, nil
		},
	}

	svc := NewService(gateway, nil)
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Devices, 2)
	assert.Equal(t, []int64{9, 5, 3, 1}, eventIDs(overview.RecentEvents))

	// События запрошены в порядке списка устройств
	calls := gateway.GetDeviceEventsCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, int64(1), calls[0].DeviceID)
	assert.Equal(t, int64(2), calls[1].DeviceID)
}

func TestService_Overview_TruncatesToLimit(t *testing.T) {
	gateway := &httpClient.ClientAPIMock{
		GetDevicesFunc: func(ctx context.Context) (*pkgapi.Result[[]pkgapi.Device], error) {
			return &pkgapi.Result[[]pkgapi.Device]{
				Code: pkgapi.CodeSuccess,
				Data: []pkgapi.Device{{ID: 1, Name: "D1"}},
			}, nil
		},
		GetDeviceEventsFunc: func(ctx context.Context, deviceID int64) (*pkgapi.Result[[]pkgapi.Event], error) {
			return &pkgapi.Result[[]pkgapi.Event]{
				Code: pkgapi.CodeSuccess,
				Data: eventsWithIDs(4, 12, 7, 1, 15, 9, 2, 11, 6, 13, 3, 8, 14, 5, 10),
			}, nil
		},
	}

	svc := NewService(gateway, nil)
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	// Не больше 10 событий, новые первыми
	assert.Equal(t, []int64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6}, eventIDs(overview.RecentEvents))
}

func TestService_Overview_PartialFailure(t *testing.T) {
	tests := []struct {
		failWith func() (*pkgapi.Result[[]pkgapi.Event], error)
		name     string
	}{
		{
			name: "transport error",
			failWith: func() (*pkgapi.Result[[]pkgapi.Event], error) {
				return nil, errors.New("connection reset")
			},
		},
		{
			name: "non-success code",
			failWith: func() (*pkgapi.Result[[]pkgapi.Event], error) {
				return &pkgapi.Result[[]pkgapi.Event]{Code: pkgapi.CodeDatabaseFailure}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &httpClient.ClientAPIMock{
				GetDevicesFunc: func(ctx context.Context) (*pkgapi.Result[[]pkgapi.Device], error) {
					return &pkgapi.Result[[]pkgapi.Device]{
						Code: pkgapi.CodeSuccess,
						Data: []pkgapi.Device{{ID: 1, Name: "broken"}, {ID: 2, Name: "healthy"}},
					}, nil
				},
				GetDeviceEventsFunc: func(ctx context.Context, deviceID int64) (*pkgapi.Result[[]pkgapi.Event], error) {
					if deviceID == 1 {
						return tt.failWith()
					}
					return &pkgapi.Result[[]pkgapi.Event]{
						Code: pkgapi.CodeSuccess,
						Data: eventsWithIDs(8, 2),
					}, nil
				},
			}

			svc := NewService(gateway, nil)
			overview, err := svc.Overview(context.Background())
			require.NoError(t, err)

			// Отказ одного устройства не валит сводку:
			// события здорового устройства остаются
			assert.Equal(t, []int64{8, 2}, eventIDs(overview.RecentEvents))
		})
	}
}

func TestService_Overview_NoDevices(t *testing.T) {
	gateway := &httpClient.ClientAPIMock{
		GetDevicesFunc: func(ctx context.Context) (*pkgapi.Result[[]pkgapi.Device], error) {
			return &pkgapi.Result[[]pkgapi.Device]{Code: pkgapi.CodeSuccess, Data: []pkgapi.Device{}}, nil
		},
	}

	svc := NewService(gateway, nil)
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Empty(t, overview.Devices)
	assert.Empty(t, overview.RecentEvents)
}

func TestService_Overview_DevicesFailure(t *testing.T) {
	gateway := &httpClient.ClientAPIMock{
		GetDevicesFunc: func(ctx context.Context) (*pkgapi.Result[[]pkgapi.Device], error) {
			return &pkgapi.Result[[]pkgapi.Device]{Code: pkgapi.CodeDatabaseFailure}, nil
		},
	}

	svc := NewService(gateway, nil)
	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Database operation failed")
}

func TestService_DeviceEvents_SortedDesc(t *testing.T) {
	gateway := &httpClient.ClientAPIMock{
		GetDeviceEventsFunc: func(ctx context.Context, deviceID int64) (*pkgapi.Result[[]pkgapi.Event], error) {
			assert.Equal(t, int64(7), deviceID)
			return &pkgapi.Result[[]pkgapi.Event]{
				Code: pkgapi.CodeSuccess,
				Data: eventsWithIDs(2, 9, 5),
			}, nil
		},
	}

	svc := NewService(gateway, nil)
	events, err := svc.DeviceEvents(context.Background(), 7)
	require.NoError(t, err)

	// Полный список, без усечения, новые первыми
	assert.Equal(t, []int64{9, 5, 2}, eventIDs(events))
}

func TestService_DeviceEvents_NotFound(t *testing.T) {
	gateway := &httpClient.ClientAPIMock{
		GetDeviceEventsFunc: func(ctx context.Context, deviceID int64) (*pkgapi.Result[[]pkgapi.Event], error) {
			return &pkgapi.Result[[]pkgapi.Event]{Code: pkgapi.CodeDeviceNotFound}, nil
		},
	}

	svc := NewService(gateway, nil)
	_, err := svc.DeviceEvents(context.Background(), 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Device not found")
}

func TestMergeRecent_Properties(t *testing.T) {
	// Результат всегда отсортирован по убыванию, не длиннее лимита
	// и является подмножеством входа
	input := eventsWithIDs(3, 17, 1, 20, 5, 11, 8, 2, 19, 4, 13, 7)
	merged := mergeRecent(append([]pkgapi.Event(nil), input...), 10)

	require.Len(t, merged, 10)
	for i := 1; i < len(merged); i++ {
		assert.Greater(t, merged[i-1].ID, merged[i].ID)
	}

	inputIDs := make(map[int64]bool, len(input))
	for _, event := range input {
		inputIDs[event.ID] = true
	}
	for _, event := range merged {
		assert.True(t, inputIDs[event.ID])
	}
}
