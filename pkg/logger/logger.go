package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so library code and tests never trip over a
// nil logger; Init just promotes it to the process default.
var Log = newJSONLogger()

func newJSONLogger() *slog.Logger {
	// JSON handler for production-ready logging
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func Init() {
	Log = newJSONLogger()
	slog.SetDefault(Log)
}
