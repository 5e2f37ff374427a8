package cache

import (
	"fmt"
	"log/slog"
	"strings"
)

type BadgerLoggerWrapper struct{}

func (*BadgerLoggerWrapper) Errorf(format string, args ...interface{}) {
	slog.Error(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"), slog.String("module", "badger"))
}

func (*BadgerLoggerWrapper) Warningf(format string, args ...interface{}) {
	slog.Warn(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"), slog.String("module", "badger"))
}

func (*BadgerLoggerWrapper) Infof(format string, args ...interface{}) {
	slog.Info(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"), slog.String("module", "badger"))
}

func (*BadgerLoggerWrapper) Debugf(format string, args ...interface{}) {
	slog.Debug(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"), slog.String("module", "badger"))
}
