package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide slog.Logger: JSON on stdout, level taken
// from LOG_LEVEL (debug, info, warn, error), info when unset.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFromEnv()})
	return slog.New(handler).With(slog.String("service", "backoffice"))
}

func levelFromEnv() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
