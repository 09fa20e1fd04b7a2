// Package logging builds the service-wide slog logger.
package logging

import (
	"log/slog"
	"os"
)

const (
	envProd       = "prod"
	envProduction = "production"
)

// New returns a logger tuned for the environment: JSON at info level in
// production, human-readable text at debug level everywhere else.
func New(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case envProd, envProduction:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	return slog.New(handler)
}
