package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a debug-level text logger for local runs.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}
