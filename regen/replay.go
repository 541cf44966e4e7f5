package regen

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"sync"

	g "github.com/anacrolix/generics"
	"github.com/google/uuid"
	"github.com/on-the-ground/lazy_ive_go/internal/config"
	"go.uber.org/zap"
)

// drainAll is the fill target that pulls until the source ends.
const drainAll = math.MaxInt

// Replay caches the elements pulled from a Source so it can be traversed again.
//
// consumed[0:Cursor()] always holds, in order, the first Cursor() elements the source
// produced. Each source element is pulled at most once.
type Replay[T any] struct {
	id        string
	source    Source[T]
	consumed  []T
	exhausted bool
	err       error

	mu     sync.Locker
	logger *zap.Logger
}

// Regen makes src replayable.
//
// A Sequence, including a Slice or a Replay, is returned unchanged and a []T is
// returned as a Slice. A Source, an iter.Seq, a fallible iter.Seq2, a pull function
// or a channel is wrapped in a Replay with an empty cache. Anything else fails with
// ErrNotIterable.
func Regen[T any](src any, opts ...Option) (Sequence[T], error) {
	switch s := src.(type) {
	case Sequence[T]:
		return s, nil
	case []T:
		return Of(s), nil
	case Source[T]:
		return New(s, opts...), nil
	case iter.Seq[T]:
		return FromSeq(s, opts...), nil
	case func(func(T) bool):
		return FromSeq(s, opts...), nil
	case iter.Seq2[T, error]:
		return FromSeq2(s, opts...), nil
	case func(func(T, error) bool):
		return FromSeq2(s, opts...), nil
	case func() (T, bool, error):
		return FromFunc(s, opts...), nil
	case <-chan T:
		return FromChan[T](s, opts...), nil
	case chan T:
		return FromChan[T](s, opts...), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, src)
}

func New[T any](src Source[T], opts ...Option) *Replay[T] {
	cfg := config.NewConfig(opts...)
	r := &Replay[T]{
		id:     uuid.New().String(),
		source: src,
		mu:     cfg.Locker(),
		logger: cfg.Logger,
	}
	r.logger = r.logger.With(zap.String("replay_id", r.id))
	return r
}

// FromSeq replays seq. Close the Replay if it may be abandoned before the end.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Replay[T] {
	return New[T](PullSeq(seq), opts...)
}

// FromSeq2 replays a fallible seq. See Seq2Source for how yielded errors are consumed.
func FromSeq2[T any](seq iter.Seq2[T, error], opts ...Option) *Replay[T] {
	return New[T](PullSeq2(seq), opts...)
}

func FromFunc[T any](next func() (T, bool, error), opts ...Option) *Replay[T] {
	return New[T](FuncSource[T](next), opts...)
}

func FromChan[T any](ch <-chan T, opts ...Option) *Replay[T] {
	return New[T](ChanSource[T](ch), opts...)
}

// ID identifies the replay in log entries.
func (r *Replay[T]) ID() string {
	return r.id
}

// Cursor returns how many elements have been pulled from the source.
func (r *Replay[T]) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consumed)
}

// Exhausted reports whether the source has signalled its end.
func (r *Replay[T]) Exhausted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exhausted
}

// LengthHint estimates how many elements the source has left to produce. It is
// the source's own estimate, or zero once the source is exhausted. Elements already
// cached do not count.
func (r *Replay[T]) LengthHint() g.Option[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exhausted {
		return g.Some(0)
	}
	if h, ok := r.source.(LengthHinter); ok {
		return h.LengthHint()
	}
	return g.None[int]()
}

func (r *Replay[T]) At(i int) (T, error) {
	var zero T

	if i < 0 {
		all, err := r.Materialize()
		if err != nil {
			return zero, err
		}
		return Slice[T](all).At(i)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i < len(r.consumed) {
		return r.consumed[i], nil
	}
	if err := r.fill(i); err != nil {
		return zero, err
	}
	if i >= len(r.consumed) {
		return zero, &IndexError{Index: i, Len: len(r.consumed)}
	}
	return r.consumed[i], nil
}

func (r *Replay[T]) Materialize() ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exhausted {
		if err := r.fill(drainAll); err != nil {
			return nil, err
		}
		r.logger.Debug("replay materialized", zap.Int("length", len(r.consumed)))
	}
	return r.consumed, nil
}

func (r *Replay[T]) Len() (int, error) {
	all, err := r.Materialize()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *Replay[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; ; i++ {
			v, ok, err := r.get(i)
			if err != nil {
				yield(v, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

func (r *Replay[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range r.All() {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (r *Replay[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close releases the source if it is an io.Closer. Elements not yet pulled are
// dropped and the replay behaves as exhausted from then on.
func (r *Replay[T]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exhausted {
		return nil
	}
	return r.finish()
}

// MarshalJSON encodes the materialized elements as a JSON array.
func (r *Replay[T]) MarshalJSON() ([]byte, error) {
	all, err := r.Materialize()
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []T{}
	}
	return json.Marshal(all)
}

// get returns element i for a traversal, pulling it if needed.
func (r *Replay[T]) get(i int) (v T, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i >= len(r.consumed) {
		if err = r.fill(i); err != nil {
			return
		}
		if i >= len(r.consumed) {
			return
		}
	}
	return r.consumed[i], true, nil
}

// fill pulls until the cache holds index i or the source ends.
// A failed pull leaves the cursor where it was. Callers hold mu.
func (r *Replay[T]) fill(i int) error {
	for !r.exhausted && len(r.consumed) <= i {
		v, ok, err := r.source.Next()
		if err != nil {
			r.err = err
			r.logger.Debug("replay pull failed", zap.Int("cursor", len(r.consumed)), zap.Error(err))
			return err
		}
		r.err = nil
		if !ok {
			if err := r.finish(); err != nil {
				r.logger.Warn("failed to close exhausted source", zap.Error(err))
			}
			break
		}
		r.consumed = append(r.consumed, v)
	}
	return nil
}

func (r *Replay[T]) finish() error {
	r.exhausted = true
	r.logger.Debug("replay source exhausted", zap.Int("length", len(r.consumed)))
	if c, ok := r.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
