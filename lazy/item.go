package lazy

// Item is either a plain value or a deferred Value.
// The zero Item is a plain zero value.
type Item[T any] struct {
	value    T
	deferred Value[T]
}

func Plain[T any](v T) Item[T] {
	return Item[T]{value: v}
}

// Promise wraps v so that resolving the Item evaluates it.
func Promise[T any](v Value[T]) Item[T] {
	return Item[T]{deferred: v}
}

func (it Item[T]) IsDeferred() bool {
	return it.deferred != nil
}

// Resolve returns the plain value, or the result of evaluating the deferred one.
func (it Item[T]) Resolve() (T, error) {
	if it.deferred == nil {
		return it.value, nil
	}
	return it.deferred.Evaluate()
}

// MaybeEvaluate resolves it.
func MaybeEvaluate[T any](it Item[T]) (T, error) {
	return it.Resolve()
}
