package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FALLWATCH_SERVER_URL", "")
	t.Setenv("FALLWATCH_DB_PATH", "")

	cfg := Load()
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FALLWATCH_SERVER_URL", "https://fallwatch.example.com")
	t.Setenv("FALLWATCH_DB_PATH", "/tmp/custom.db")

	cfg := Load()
	assert.Equal(t, "https://fallwatch.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}
