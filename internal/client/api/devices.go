package api

import (
	"context"
	"fmt"

	"github.com/iudanet/fallwatch/pkg/api"
)

// GetDevices запрашивает все устройства текущего пользователя
func (c *Client) GetDevices(ctx context.Context) (*api.Result[[]api.Device], error) {
	var resp api.Result[[]api.Device]
	if err := c.doRequest(ctx, "GET", "/devices", nil, &resp); err != nil {
		return nil, fmt.Errorf("get devices request failed: %w", err)
	}
	return &resp, nil
}

// GetDevice запрашивает устройство по ID
func (c *Client) GetDevice(ctx context.Context, id int64) (*api.Result[*api.Device], error) {
	var resp api.Result[*api.Device]
	path := fmt.Sprintf("/devices/%d", id)
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get device request failed: %w", err)
	}
	return &resp, nil
}

// CreateDevice регистрирует новое устройство.
// Секретный токен устройства передается в открытом виде, сервер хранит
// только его хеш.
func (c *Client) CreateDevice(ctx context.Context, req api.CreateDeviceRequest) (*api.Result[*api.Device], error) {
	var resp api.Result[*api.Device]
	if err := c.doRequest(ctx, "POST", "/devices", req, &resp); err != nil {
		return nil, fmt.Errorf("create device request failed: %w", err)
	}
	return &resp, nil
}

// GetDeviceEvents запрашивает полный список событий устройства
func (c *Client) GetDeviceEvents(ctx context.Context, deviceID int64) (*api.Result[[]api.Event], error) {
	var resp api.Result[[]api.Event]
	path := fmt.Sprintf("/devices/%d/events", deviceID)
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get device events request failed: %w", err)
	}
	return &resp, nil
}

// HealthCheck проверяет доступность сервера
func (c *Client) HealthCheck(ctx context.Context) (*api.Result[any], error) {
	var resp api.Result[any]
	if err := c.doRequest(ctx, "GET", "/", nil, &resp); err != nil {
		return nil, fmt.Errorf("health check request failed: %w", err)
	}
	return &resp, nil
}
