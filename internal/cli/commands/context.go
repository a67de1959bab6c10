package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/imca-cat/tripreport/internal/cli/config"
)

// ConfigKey stores the loaded config in the command context.
type ConfigKey struct{}

// LoggerKey stores the structured logger in the command context.
type LoggerKey struct{}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{SiteLevel: true}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
