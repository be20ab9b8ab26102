package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_PATH", "/tmp/players.json")
	t.Setenv("SEASON", "season2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/players.json", cfg.DataPath)
	assert.Equal(t, "season2", cfg.Season)
	assert.Equal(t, filepath.Join("configs", "items", "season2.json"), cfg.ItemsPath)
}

func TestLoadItemsPathOverridesSeason(t *testing.T) {
	t.Setenv("SEASON", "season2")
	t.Setenv("ITEMS_PATH", "/etc/chatquest/custom.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/chatquest/custom.json", cfg.ItemsPath)
}

func TestLoadInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"not a number", "abc"},
		{"negative", "-1"},
		{"zero", "0"},
		{"too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
