package querykit

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// OrderBy returns the elements of the source sorted by key in ascending order. Eager.
//
// The sort is stable, elements with equal keys keep their relative source order.
// The key selector is called exactly once per element.
func OrderBy[T any, K types.Ordered](src iter.Seq[T], key func(T) K) []T {
	return OrderByFunc(src, key, cmp.Compare[K])
}

// OrderByDescending returns the elements of the source sorted by key in descending order. Eager.
//
// Elements with equal keys keep their relative source order,
// the result is not the reverse of OrderBy's result.
func OrderByDescending[T any, K types.Ordered](src iter.Seq[T], key func(T) K) []T {
	return OrderByDescendingFunc(src, key, cmp.Compare[K])
}

// OrderByFunc is OrderBy for keys which are compared with an explicit compare function. Eager.
// compare must return a negative number when a < b, a positive number when a > b and zero when they are equal.
func OrderByFunc[T, K any](src iter.Seq[T], key func(T) K, compare func(a, b K) int) []T {
	return values(sortByKey(src, key, compare))
}

// OrderByDescendingFunc is OrderByDescending with an explicit compare function. Eager.
func OrderByDescendingFunc[T, K any](src iter.Seq[T], key func(T) K, compare func(a, b K) int) []T {
	return values(sortByKey(src, key, func(a, b K) int { return compare(b, a) }))
}

type keyed[K, T any] struct {
	Key   K
	Value T
}

func sortByKey[T, K any](src iter.Seq[T], key func(T) K, compare func(a, b K) int) []keyed[K, T] {
	var vs = make([]keyed[K, T], 0)
	for v := range src {
		vs = append(vs, keyed[K, T]{Key: key(v), Value: v})
	}
	slices.SortStableFunc(vs, func(a, b keyed[K, T]) int {
		return compare(a.Key, b.Key)
	})
	return vs
}

func values[K, T any](kvs []keyed[K, T]) []T {
	var vs = make([]T, 0, len(kvs))
	for _, kv := range kvs {
		vs = append(vs, kv.Value)
	}
	return vs
}
