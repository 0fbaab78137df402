package querykit

import "iter"

// Lazy creates a re-iterable sequence from an upstream value and a transform function.
//
// Each range over the returned sequence calls transform(upstream) anew and yields what it produces.
// Nothing is buffered between traversals, and traversals don't share any state,
// so the returned iter.Seq can be ranged over many times, even at the same time.
//
// Lazy holds on to upstream without copying it, the upstream must outlive every traversal.
// If the upstream can only be traversed once, like a SingleUseSeq,
// then only the first traversal of the result will yield values.
func Lazy[U, T any](upstream U, transform func(U) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seq := transform(upstream)
		if seq == nil {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// LazyErr is the ErrSeq counterpart of Lazy.
func LazyErr[U, T any](upstream U, transform func(U) ErrSeq[T]) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		seq := transform(upstream)
		if seq == nil {
			return
		}
		for v, err := range seq {
			if !yield(v, err) {
				return
			}
		}
	}
}
