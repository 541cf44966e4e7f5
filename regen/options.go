package regen

import (
	"github.com/on-the-ground/lazy_ive_go/internal/config"
	"go.uber.org/zap"
)

type Option = config.Option

// WithLogger sets the logger receiving debug events. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return config.WithLogger(logger)
}

// WithLock guards the cache and cursor with a mutex. Traversals take the lock per
// element and never hold it while yielding.
func WithLock() Option {
	return config.WithLock()
}
