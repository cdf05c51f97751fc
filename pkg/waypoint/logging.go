package waypoint

import (
	"log/slog"
	"os"
	"sync"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

var envLoggingOnce sync.Once

// configureLogging applies the logging environment variables once per process.
func configureLogging() {
	envLoggingOnce.Do(func() {
		if constants.IsDebug() {
			internal.SetInternalLogLevel(slog.LevelDebug)
		}
		if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
			internal.SetRawLogLevel(level)
		}
	})
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// CloseLogger closes the log file set with SetLogPath.
func CloseLogger() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetDebug turns the deep linker's navigation narration on or off.
func SetDebug(enabled bool) {
	if enabled {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}
