package logging

import (
	"log/slog"
	"strings"
)

// SetLevel sets the level of the default slog logger. Valid levels are debug,
// info, warn and error; anything else falls back to info.
func SetLevel(level string) slog.Level {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		slog.Warn("no/invalid log level provided, setting to info", slog.String("level", level))
		l = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(l)
	return l
}
