package lazy

import (
	"sync"
	"time"

	"github.com/on-the-ground/lazy_ive_go/internal/config"
	"go.uber.org/zap"
)

// Value is a computation whose result is produced on demand.
type Value[T any] interface {
	Evaluate() (T, error)
	Evaluated() bool
}

var (
	_ Value[int] = (*Deferred[int])(nil)
	_ Value[int] = (*Memo[int])(nil)
)

// Deferred runs its computation on every Evaluate. Nothing is cached.
type Deferred[T any] struct {
	fn func() (T, error)
}

func Defer[T any](fn func() (T, error)) *Deferred[T] {
	return &Deferred[T]{fn: fn}
}

func (d *Deferred[T]) Evaluate() (T, error) {
	return d.fn()
}

// Evaluated is always false: a Deferred never holds a result.
func (d *Deferred[T]) Evaluated() bool {
	return false
}

// Memo runs its computation at most once per success.
//
// Until a call succeeds the Memo stays unevaluated and every Evaluate retries the
// computation. After the first success the value is fixed for the life of the Memo.
type Memo[T any] struct {
	fn        func() (T, error)
	evaluated bool
	value     T
	span      TimeSpan

	mu     sync.Locker
	logger *zap.Logger
}

// Memoize returns an unevaluated Memo over fn.
//
// With WithLock, fn runs while the Memo's lock is held, so fn must not evaluate the same Memo.
func Memoize[T any](fn func() (T, error), opts ...Option) *Memo[T] {
	cfg := config.NewConfig(opts...)
	return &Memo[T]{
		fn:     fn,
		mu:     cfg.Locker(),
		logger: cfg.Logger,
	}
}

func (m *Memo[T]) Evaluate() (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.evaluated {
		return m.value, nil
	}

	start := time.Now()
	v, err := m.fn()
	if err != nil {
		m.logger.Debug("memo evaluation failed", zap.Error(err))
		var zero T
		return zero, err
	}

	m.value = v
	m.span = NewTimeSpan(start, time.Now())
	m.evaluated = true
	m.logger.Debug("memo evaluated", zap.Duration("took", m.span.Duration()))
	return v, nil
}

func (m *Memo[T]) Evaluated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evaluated
}

// EvaluatedIn reports the time span of the successful evaluation.
// ok is false while the Memo is unevaluated.
func (m *Memo[T]) EvaluatedIn() (span TimeSpan, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.span, m.evaluated
}

// NoErr adapts an infallible computation for Defer and Memoize.
func NoErr[T any](fn func() T) func() (T, error) {
	return func() (T, error) {
		return fn(), nil
	}
}

// Must evaluates v and panics on error.
func Must[T any](v Value[T]) T {
	res, err := v.Evaluate()
	if err != nil {
		panic(err)
	}
	return res
}
