package querykit

import "iter"

// Any reports whether the source has at least one element. Eager.
// Only the first element is pulled.
func Any[T any](src iter.Seq[T]) bool {
	_, ok := first(src)
	return ok
}

// AnyFunc reports whether any element of the source satisfies the predicate. Eager.
// It stops at the first match, and it is false for an empty source.
func AnyFunc[T any](src iter.Seq[T], predicate func(T) bool) bool {
	if src == nil {
		return false
	}
	for v := range src {
		if predicate(v) {
			return true
		}
	}
	return false
}
