package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	DefaultServerURL = "http://localhost:8000"
	DefaultDBPath    = "fallwatch-client.db"
)

// Config содержит настройки клиента
type Config struct {
	ServerURL string // адрес сервера платформы
	DBPath    string // путь к локальной BoltDB базе
}

// Load читает настройки из .env файла (если он есть) и переменных
// окружения. Флаги командной строки имеют приоритет и применяются в main.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env опционален, полагаемся на окружение
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		ServerURL: DefaultServerURL,
		DBPath:    DefaultDBPath,
	}

	if serverURL := os.Getenv("FALLWATCH_SERVER_URL"); serverURL != "" {
		cfg.ServerURL = serverURL
	}

	if dbPath := os.Getenv("FALLWATCH_DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	return cfg
}
