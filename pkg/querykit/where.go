package querykit

import "iter"

// Where filters the source by a predicate. Lazy.
//
// The result yields, in source order, the elements for which predicate returns true.
// The predicate is only evaluated for the elements the consumer actually pulls.
func Where[T any](src iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Lazy(src, func(src iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range src {
				if predicate(v) {
					if !yield(v) {
						return
					}
				}
			}
		}
	})
}
