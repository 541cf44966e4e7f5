// Package seqfn scans sequences that may hold deferred values.
package seqfn

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/shared/helper"
)

// Plains lifts every element of seq into a plain Item.
func Plains[T any](seq iter.Seq[T]) iter.Seq[lazy.Item[T]] {
	return func(yield func(lazy.Item[T]) bool) {
		for v := range seq {
			if !yield(lazy.Plain(v)) {
				return
			}
		}
	}
}

// EvaluatePromises yields every element of seq, resolving deferred items first.
//
// A failed resolution is yielded as the last pair. The result is restartable
// exactly when seq is.
func EvaluatePromises[T any](seq iter.Seq[lazy.Item[T]]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item := range seq {
			v, err := item.Resolve()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// FirstItem returns the first resolved element of seq for which pred holds.
// A nil pred matches the first non-nil element. Nothing past the match is pulled.
func FirstItem[T any](pred func(T) bool, seq iter.Seq[lazy.Item[T]]) (g.Option[T], error) {
	for v, err := range EvaluatePromises(seq) {
		if err != nil {
			return g.None[T](), err
		}
		if matches(pred, v) {
			return g.Some(v), nil
		}
	}
	return g.None[T](), nil
}

// First is FirstItem over plain elements of an infallible seq.
//
// It cannot tell a source failure from the end of seq. Use FirstErr with
// Sequence.All for sequences that pull from a fallible source.
func First[T any](pred func(T) bool, seq iter.Seq[T]) g.Option[T] {
	for v := range seq {
		if matches(pred, v) {
			return g.Some(v)
		}
	}
	return g.None[T]()
}

// FirstErr returns the first element of a fallible seq for which pred holds.
// An error from seq is returned as is, and nothing past the match or the error is pulled.
func FirstErr[T any](pred func(T) bool, seq iter.Seq2[T, error]) (g.Option[T], error) {
	for v, err := range seq {
		if err != nil {
			return g.None[T](), err
		}
		if matches(pred, v) {
			return g.Some(v), nil
		}
	}
	return g.None[T](), nil
}

// FirstValue returns the first value fn produces for a resolved element of seq.
func FirstValue[T, R any](seq iter.Seq[lazy.Item[T]], fn func(T) (R, bool)) (g.Option[R], error) {
	for v, err := range EvaluatePromises(seq) {
		if err != nil {
			return g.None[R](), err
		}
		if r, ok := fn(v); ok {
			return g.Some(r), nil
		}
	}
	return g.None[R](), nil
}

// Uniq yields the distinct elements of seq in order of first occurrence.
func Uniq[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

func matches[T any](pred func(T) bool, v T) bool {
	if pred == nil {
		return !helper.IsNil(v)
	}
	return pred(v)
}
