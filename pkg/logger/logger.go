package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "astro-insight"

// New constructs the JSON slog logger used by the HTTP service.
func New() *slog.Logger {
	return build(os.Stdout, parseLevel(os.Getenv("LOG_LEVEL")))
}

// NewCLI logs to stderr so stdout stays reserved for the report.
func NewCLI(verbose bool) *slog.Logger {
	var level slog.Leveler = slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return build(os.Stderr, level)
}

func build(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", serviceName)
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
