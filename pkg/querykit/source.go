package querykit

import (
	"iter"
	"sync/atomic"
)

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int, both inclusive.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := begin; n <= end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Once turns a sequence into a SingleUseSeq.
// The first traversal walks i, every later traversal yields nothing,
// which makes it handy for representing streams that can't be rewound.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}
