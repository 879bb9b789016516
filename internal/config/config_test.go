package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "https://jsonplaceholder.typicode.com", cfg.SourceBaseURL)
	require.True(t, cfg.ImportOnStart)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_LISTEN_ADDR", ":9090")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("IMPORT_ON_START", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	require.False(t, cfg.ImportOnStart)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestSlogLevel_UnknownFallsBack(t *testing.T) {
	c := Config{LogLevel: "chatty"}
	require.Equal(t, slog.LevelInfo, c.SlogLevel())
}
