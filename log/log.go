package log

import (
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// NewProduction returns zap's production logger, or a no-op logger if it cannot be built.
// Debug events emitted by replays and memos are dropped at production level.
func NewProduction() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// OrNop returns logger, or a no-op logger when logger is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Emit writes msg at the given level with fields converted to zap fields.
// Unknown levels are logged at info.
func Emit(logger *zap.Logger, level LogLevel, msg string, fields map[string]interface{}) {
	zfs := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfs = append(zfs, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zfs...)
	case LogWarn:
		logger.Warn(msg, zfs...)
	case LogError:
		logger.Error(msg, zfs...)
	case LogDebug:
		logger.Debug(msg, zfs...)
	default:
		logger.Info(msg, zfs...)
	}
}

// Sync flushes logger, reporting the failure on the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
