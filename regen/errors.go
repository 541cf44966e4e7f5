package regen

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrNotIterable = errors.New("value is not iterable")
)

// IndexError reports an index outside a fully drained sequence of length Len.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
