package pure

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2, error),
	maxTableSize uint32,
) func(I1) (O1, O2, error) {
	tableized := tableize_dual_output(
		func(args ...ComparableOrStringer) (O1, O2, error) {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, O2, error) {
		return tableized(i1)
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2, error),
	maxTableSize uint32,
) func(I1, I2) (O1, O2, error) {
	tableized := tableize_dual_output(
		func(args ...ComparableOrStringer) (O1, O2, error) {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, O2, error) {
		return tableized(i1, i2)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func tableize_dual_output[O1, O2 any](
	pureFn func(...ComparableOrStringer) (O1, O2, error),
	maxTableSize uint32,
) func(...ComparableOrStringer) (O1, O2, error) {
	tableized := tableize(
		func(args ...ComparableOrStringer) (result[O1, O2], error) {
			v1, v2, err := pureFn(args...)
			return result[O1, O2]{O1: v1, O2: v2}, err
		},
		maxTableSize,
	)
	return func(args ...ComparableOrStringer) (O1, O2, error) {
		res, err := tableized(args...)
		return res.O1, res.O2, err
	}
}
