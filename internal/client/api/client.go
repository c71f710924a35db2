package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/fallwatch/internal/client/storage"
)

// ErrAuthRejected возвращается, когда сервер отклонил запрос со статусом 401.
// К моменту возврата ошибки токен уже сброшен (память и durable storage),
// а обработчик onAuthRejected уже вызван.
var ErrAuthRejected = errors.New("authentication rejected by server")

// Client представляет HTTP клиент для взаимодействия с сервером.
// Клиент владеет bearer токеном: копией в памяти и копией в durable storage.
type Client struct {
	httpClient     *http.Client
	tokens         storage.TokenStorage
	onAuthRejected func()
	logger         *slog.Logger
	baseURL        string
	mu             sync.RWMutex
	token          string
}

// Option настраивает Client при создании
type Option func(*Client)

// WithTokenStorage подключает durable хранилище токена.
// Без него токен живет только в памяти процесса.
func WithTokenStorage(tokens storage.TokenStorage) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithAuthRejectedHandler задает обработчик, вызываемый при ответе 401.
// Обработчик вызывается после сброса токена и до возврата ошибки вызывающему,
// независимо от того, какая операция получила отказ.
func WithAuthRejectedHandler(handler func()) Option {
	return func(c *Client) {
		c.onAuthRejected = handler
	}
}

// WithLogger задает логгер клиента
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый API клиент.
// serverURL указывает на корень сервера, REST пути монтируются под /api.
func NewClient(serverURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(serverURL, "/") + "/api",
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RestoreSession однократно читает токен из durable storage и ставит его
// в память, чтобы новый процесс продолжил прошлую сессию без повторного
// ввода учетных данных. Отсутствие сохраненного токена не является ошибкой.
func (c *Client) RestoreSession(ctx context.Context) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return nil
}

// SetToken ставит токен в память и durable storage.
// Ошибка персистенции не прерывает работу: текущий процесс остается
// аутентифицированным, деградирует только восстановление сессии.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.tokens != nil {
		if err := c.tokens.SaveToken(context.Background(), token); err != nil {
			c.logger.Warn("failed to persist bearer token", "error", err)
		}
	}
}

// ClearToken убирает токен из памяти и durable storage. Идемпотентна.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.tokens != nil {
		if err := c.tokens.DeleteToken(context.Background()); err != nil {
			c.logger.Warn("failed to delete persisted bearer token", "error", err)
		}
	}
}

// Token возвращает текущий bearer токен ("" если токена нет)
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest выполняет HTTP запрос с JSON телом
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, result)
}

// doForm выполняет HTTP запрос с form-encoded телом (логин)
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, result)
}

// send добавляет bearer заголовок, выполняет запрос и разбирает ответ.
// Инвариант: заголовок Authorization присутствует тогда и только тогда,
// когда токен установлен и не был сброшен.
func (c *Client) send(req *http.Request, result interface{}) error {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Ответ 401 безусловно гасит сессию: токен сбрасывается из памяти и
	// durable storage, обработчик вызывается до возврата ошибки. Это
	// гарантирует, что протухший токен не переживет отказ сервера.
	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
		if c.onAuthRejected != nil {
			c.onAuthRejected()
		}
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrAuthRejected)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
