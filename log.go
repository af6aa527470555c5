package scrollview

import (
	"log/slog"
	"os"
)

// logLevel controls the level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for scroll views.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// scrollLogger is the default logger for views created without WithLogger.
var scrollLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
