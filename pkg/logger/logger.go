package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// Structured JSON logs so the output is machine-parseable in production
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
