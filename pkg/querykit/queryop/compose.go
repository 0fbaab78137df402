package queryop

import "iter"

// Chain composes same typed lazy operators, applied from left to right.
// An empty Chain returns the source as is.
func Chain[T any](ops ...Lazy[T, T]) Lazy[T, T] {
	return func(src iter.Seq[T]) iter.Seq[T] {
		for _, op := range ops {
			src = op(src)
		}
		return src
	}
}

// Then composes two lazy operators, a runs first.
func Then[A, B, C any](a Lazy[A, B], b Lazy[B, C]) Lazy[A, C] {
	return func(src iter.Seq[A]) iter.Seq[C] { return b(a(src)) }
}

// Finally terminates a lazy operator with an eager one.
func Finally[A, B, R any](l Lazy[A, B], e Eager[B, R]) Eager[A, R] {
	return func(src iter.Seq[A]) R { return e(l(src)) }
}

func Apply[In, Out any](src iter.Seq[In], op Lazy[In, Out]) iter.Seq[Out] {
	return op(src)
}

func Eval[In, R any](src iter.Seq[In], op Eager[In, R]) R {
	return op(src)
}
