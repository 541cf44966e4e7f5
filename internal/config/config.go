package config

import (
	"sync"

	"github.com/on-the-ground/lazy_ive_go/log"
	"go.uber.org/zap"
)

// Config carries the settings shared by replays and memos.
type Config struct {
	Logger *zap.Logger // default: no-op
	Locked bool        // default: false, callers serialize access
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithLock() Option {
	return func(c *Config) {
		c.Locked = true
	}
}

func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	c.Logger = log.OrNop(c.Logger)
	return c
}

// Locker returns a mutex when the config is locked, and a no-op locker otherwise.
func (c Config) Locker() sync.Locker {
	if c.Locked {
		return &sync.Mutex{}
	}
	return noLock{}
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
