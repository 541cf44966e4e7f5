package regen_test

import (
	"errors"
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/on-the-ground/lazy_ive_go/regen"
)

var errPull = errors.New("pull failed")

// countingSource yields its values once each and counts pulls.
// Pulls listed in failAt fail once before succeeding on retry.
type countingSource struct {
	values []int
	pos    int
	pulls  int
	failAt map[int]bool
	closed bool
}

func newCountingSource(values ...int) *countingSource {
	return &countingSource{values: values, failAt: map[int]bool{}}
}

func (s *countingSource) Next() (int, bool, error) {
	s.pulls++
	if s.failAt[s.pos] {
		delete(s.failAt, s.pos)
		return 0, false, errPull
	}
	if s.pos >= len(s.values) {
		return 0, false, nil
	}
	v := s.values[s.pos]
	s.pos++
	return v, true, nil
}

func (s *countingSource) LengthHint() g.Option[int] {
	return g.Some(len(s.values) - s.pos)
}

func (s *countingSource) Close() error {
	s.closed = true
	return nil
}

// concreteSource is both a Source and a Sequence, so Regen must not wrap it.
type concreteSource struct {
	regen.Slice[int]
	pulls int
}

func (c *concreteSource) Next() (int, bool, error) {
	c.pulls++
	return 0, false, nil
}

func collect(seq iter.Seq2[int, error]) ([]int, error) {
	var out []int
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

func gen(n int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}
