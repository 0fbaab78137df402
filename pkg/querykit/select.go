package querykit

import "iter"

// Select projects each element of the source through selector. Lazy.
//
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The selector is applied one element at a time, as the consumer pulls the next value.
func Select[From, To any](src iter.Seq[From], selector func(From) To) iter.Seq[To] {
	return Lazy(src, func(src iter.Seq[From]) iter.Seq[To] {
		return func(yield func(To) bool) {
			for v := range src {
				if !yield(selector(v)) {
					return
				}
			}
		}
	})
}
