package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// List tool defaults.
	ListLimit int
	MaxLimit  int

	// Document loading.
	MaxFileSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GSONPTR_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ListLimit:   envInt("GSONPTR_LIST_LIMIT", 100),
		MaxLimit:    envInt("GSONPTR_MAX_LIMIT", 1000),
		MaxFileSize: envInt64("GSONPTR_MAX_FILE_SIZE", 10*1024*1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid env value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid env value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
