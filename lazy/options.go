package lazy

import (
	"github.com/on-the-ground/lazy_ive_go/internal/config"
	"go.uber.org/zap"
)

type Option = config.Option

// WithLogger sets the logger receiving debug events. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return config.WithLogger(logger)
}

// WithLock guards the evaluated flag and cached value with a mutex.
func WithLock() Option {
	return config.WithLock()
}
