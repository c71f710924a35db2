package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	httpClient "github.com/iudanet/fallwatch/internal/client/api"
	pkgapi "github.com/iudanet/fallwatch/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// recentEventsLimit ограничивает сводку последних событий на дашборде
const recentEventsLimit = 10

// Overview содержит агрегированные данные для дашборда
type Overview struct {
	Devices      []pkgapi.Device // все устройства пользователя
	RecentEvents []pkgapi.Event  // до 10 последних событий со всех устройств
}

// Service определяет интерфейс дашборд-сервиса
type Service interface {
	// Overview собирает сводку: устройства и объединенный список последних
	// событий (сортировка по ID по убыванию, не больше 10)
	Overview(ctx context.Context) (*Overview, error)

	// DeviceEvents возвращает все события одного устройства,
	// новые первыми, без усечения
	DeviceEvents(ctx context.Context, deviceID int64) ([]pkgapi.Event, error)
}

// service aggregates per-device telemetry into dashboard views
type service struct {
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
}

// NewService creates a new dashboard service
func NewService(apiClient httpClient.ClientAPI, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		logger:    logger,
	}
}

// Overview собирает сводку дашборда.
// Списки событий запрашиваются по одному устройству за раз, в порядке
// списка устройств; итоговый порядок нормализуется явной сортировкой,
// так что порядок запросов на результат не влияет.
func (s *service) Overview(ctx context.Context) (*Overview, error) {
	devicesRes, err := s.apiClient.GetDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}
	if !devicesRes.Code.IsSuccess() {
		return nil, fmt.Errorf("failed to load devices: %s", devicesRes.Code.Message())
	}

	var allEvents []pkgapi.Event
	for _, device := range devicesRes.Data {
		eventsRes, err := s.apiClient.GetDeviceEvents(ctx, device.ID)
		if err != nil {
			// Отказ одного устройства не валит всю сводку:
			// его вклад просто выпадает из объединения
			s.logger.Warn("skipping device events",
				"device_id", device.ID,
				"device_name", device.Name,
				"error", err,
			)
			continue
		}
		if !eventsRes.Code.IsSuccess() {
			s.logger.Warn("skipping device events",
				"device_id", device.ID,
				"device_name", device.Name,
				"code", int(eventsRes.Code),
				"message", eventsRes.Code.Message(),
			)
			continue
		}

		allEvents = append(allEvents, eventsRes.Data...)
	}

	allEvents = mergeRecent(allEvents, recentEventsLimit)

	return &Overview{
		Devices:      devicesRes.Data,
		RecentEvents: allEvents,
	}, nil
}

// DeviceEvents возвращает полный список событий устройства, новые первыми
func (s *service) DeviceEvents(ctx context.Context, deviceID int64) ([]pkgapi.Event, error) {
	res, err := s.apiClient.GetDeviceEvents(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if !res.Code.IsSuccess() {
		return nil, fmt.Errorf("failed to load events: %s", res.Code.Message())
	}

	events := res.Data
	sortEventsDesc(events)
	return events, nil
}

// mergeRecent сортирует события по ID по убыванию и усекает до limit.
// ID назначаются сервером монотонно и не переиспользуются, поэтому
// убывание по ID означает "новые первыми".
func mergeRecent(events []pkgapi.Event, limit int) []pkgapi.Event {
	sortEventsDesc(events)
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

func sortEventsDesc(events []pkgapi.Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].ID > events[j].ID
	})
}
