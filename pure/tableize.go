package pure

import (
	"fmt"
)

// ComparableOrStringer is an argument usable as a table key: a comparable value,
// or a fmt.Stringer whose String() identifies it.
type ComparableOrStringer any
type ComparableOrString any

// shardThreshold is the table size from which tables are split into numShards shards.
const (
	shardThreshold = 64
	numShards      = 8
)

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) (O1, error),
	maxTableSize uint32,
) func(I1) (O1, error) {
	tableized := tableize(
		func(args ...ComparableOrStringer) (O1, error) {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, error) {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) (O1, error),
	maxTableSize uint32,
) func(I1, I2) (O1, error) {
	tableized := tableize(
		func(args ...ComparableOrStringer) (O1, error) {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, error) {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) (O1, error),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, error) {
	tableized := tableize(
		func(args ...ComparableOrStringer) (O1, error) {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return tableized(i1, i2, i3)
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func tableKeys(args []ComparableOrStringer) []ComparableOrString {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

func newTableFor[O any](maxTableSize uint32) *Table[O] {
	if maxTableSize == 0 {
		panic("maxTableSize should be greater than 0")
	}
	if maxTableSize < shardThreshold {
		return NewTable[O](maxTableSize, 1)
	}
	return NewTable[O](maxTableSize, numShards)
}

// tableize caches successful results only; a failed call is retried next time.
// Concurrent misses on the same key may each run pureFn.
func tableize[O any](
	pureFn func(...ComparableOrStringer) (O, error),
	maxTableSize uint32,
) func(...ComparableOrStringer) (O, error) {
	memo := newTableFor[O](maxTableSize)
	return func(args ...ComparableOrStringer) (O, error) {
		keys := tableKeys(args)
		if v, ok := memo.Load(keys); ok {
			return v, nil
		}
		v, err := pureFn(args...)
		if err != nil {
			return v, err
		}
		memo.Store(keys, v)
		return v, nil
	}
}
