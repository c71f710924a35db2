package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iudanet/fallwatch/pkg/api"
)

// Login выполняет аутентификацию пользователя.
// Сервер принимает form-encoded тело (OAuth2 password flow), а не JSON.
// Полученный access_token немедленно устанавливается через SetToken;
// при ошибке токен не меняется.
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp api.TokenResponse
	if err := c.doForm(ctx, "POST", "/login", form, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// GetCurrentUser запрашивает профиль текущего пользователя по токену.
// Ошибки дальше конверта Result здесь не обрабатываются — это дело
// session store.
func (c *Client) GetCurrentUser(ctx context.Context) (*api.Result[*api.User], error) {
	var resp api.Result[*api.User]
	if err := c.doRequest(ctx, "GET", "/@me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get current user request failed: %w", err)
	}
	return &resp, nil
}

// RegisterUser регистрирует нового пользователя
func (c *Client) RegisterUser(ctx context.Context, req api.RegisterRequest) (*api.Result[*api.User], error) {
	var resp api.Result[*api.User]
	if err := c.doRequest(ctx, "POST", "/users", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetUser запрашивает пользователя по ID
func (c *Client) GetUser(ctx context.Context, id int64) (*api.Result[*api.User], error) {
	var resp api.Result[*api.User]
	path := fmt.Sprintf("/users/%d", id)
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}
