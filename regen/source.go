package regen

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Source is a single-pass producer.
//
// Next returns the next element and true, or false once the source is exhausted.
// A non-nil error reports a failed pull; the element is not consumed by the caller.
type Source[T any] interface {
	Next() (v T, ok bool, err error)
}

// LengthHinter is implemented by sources that can estimate how many elements remain.
// The estimate is advisory.
type LengthHinter interface {
	LengthHint() g.Option[int]
}

// FuncSource adapts a pull function to Source.
type FuncSource[T any] func() (T, bool, error)

func (f FuncSource[T]) Next() (T, bool, error) {
	return f()
}

// ChanSource pulls from a channel until it is closed.
type ChanSource[T any] <-chan T

func (c ChanSource[T]) Next() (v T, ok bool, err error) {
	v, ok = <-c
	return
}

// LengthHint reports the number of buffered elements. An unbuffered channel gives
// no estimate.
func (c ChanSource[T]) LengthHint() g.Option[int] {
	if cap(c) == 0 {
		return g.None[int]()
	}
	return g.Some(len(c))
}

// SeqSource pulls from an iter.Seq through iter.Pull.
// The pull coroutine is released when the sequence ends or Close is called.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func PullSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool, error) {
	v, ok := s.next()
	if !ok {
		s.stop()
	}
	return v, ok, nil
}

func (s *SeqSource[T]) Close() error {
	s.stop()
	return nil
}

// Seq2Source pulls from a fallible iter.Seq2 through iter.Pull2.
//
// An error yielded by the sequence is returned from Next. The sequence has already
// advanced past it, so the following Next continues with the next pair.
type Seq2Source[T any] struct {
	next func() (T, error, bool)
	stop func()
}

func PullSeq2[T any](seq iter.Seq2[T, error]) *Seq2Source[T] {
	next, stop := iter.Pull2(seq)
	return &Seq2Source[T]{next: next, stop: stop}
}

func (s *Seq2Source[T]) Next() (v T, ok bool, err error) {
	v, err, ok = s.next()
	if !ok {
		s.stop()
		return v, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

func (s *Seq2Source[T]) Close() error {
	s.stop()
	return nil
}
