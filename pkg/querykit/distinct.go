package querykit

import "iter"

// Distinct yields each element the first time it is seen, and suppresses its later duplicates. Lazy.
//
// The source is pulled incrementally.
// The set of seen elements belongs to a single traversal,
// it is rebuilt from scratch every time the result is ranged over.
func Distinct[T comparable](src iter.Seq[T]) iter.Seq[T] {
	return DistinctBy(src, func(v T) T { return v })
}

// DistinctBy is like Distinct, but two elements count as duplicates when their keys are equal. Lazy.
// The first element with a given key wins.
func DistinctBy[T any, K comparable](src iter.Seq[T], key func(T) K) iter.Seq[T] {
	return Lazy(src, func(src iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := make(map[K]struct{})
			for v := range src {
				k := key(v)
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	})
}
