package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	EnvAddr     = "DSMI_ADDR"
	EnvLogLevel = "DSMI_LOG_LEVEL"

	DefaultAddr = "localhost:9124"
)

// Service holds settings for the HTTP service.
type Service struct {
	Addr     string
	LogLevel slog.Level
}

func LoadService() Service {
	return Service{
		Addr:     envOr(EnvAddr, DefaultAddr),
		LogLevel: envLevel(EnvLogLevel, slog.LevelInfo),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envLevel(key string, def slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return l
}
