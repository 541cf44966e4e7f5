package regen

import (
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
)

// Sequence is an indexable, measurable and repeatable sequence.
type Sequence[T any] interface {
	// At returns element i. Negative indices count from the end and drain the sequence.
	At(i int) (T, error)
	// LengthHint estimates how many elements are still to be produced.
	// It is advisory only.
	LengthHint() g.Option[int]
	// Len drains the sequence and returns its length.
	Len() (int, error)
	// Materialize drains the sequence and returns every element in order.
	// The returned slice is shared and must not be modified.
	Materialize() ([]T, error)
	// All traverses from the first element on every call.
	// It yields a failed pull as its last pair.
	All() iter.Seq2[T, error]
	// Values traverses like All, stopping silently at a failed pull. Err reports it.
	Values() iter.Seq[T]
	// Err returns the error of the latest pull, if it failed.
	Err() error
}

var (
	_ Sequence[int] = Slice[int](nil)
	_ Sequence[int] = (*Replay[int])(nil)
)

// Slice is a concrete sequence. It never pulls and never fails except on bad indices.
type Slice[T any] []T

// Of returns s as a Sequence without copying or wrapping it.
func Of[T any](s []T) Sequence[T] {
	return Slice[T](s)
}

func (s Slice[T]) At(i int) (T, error) {
	j := i
	if j < 0 {
		j += len(s)
	}
	if j < 0 || j >= len(s) {
		var zero T
		return zero, &IndexError{Index: i, Len: len(s)}
	}
	return s[j], nil
}

// LengthHint is the exact length, as a Slice never pulls.
func (s Slice[T]) LengthHint() g.Option[int] {
	return g.Some(len(s))
}

func (s Slice[T]) Len() (int, error) {
	return len(s), nil
}

func (s Slice[T]) Materialize() ([]T, error) {
	return s, nil
}

func (s Slice[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range s {
			if !yield(v, nil) {
				return
			}
		}
	}
}

func (s Slice[T]) Values() iter.Seq[T] {
	return slices.Values(s)
}

func (s Slice[T]) Err() error {
	return nil
}
