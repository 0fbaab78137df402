package querykit

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// Grouping is a key and the elements of a sequence which share that key.
// A Grouping is immutable, and ranging over it walks its already materialised elements.
type Grouping[K, T any] struct {
	key    K
	values []T
}

// Key is the key shared by the elements of the group.
func (g Grouping[K, T]) Key() K { return g.key }

// Len is the number of elements in the group.
func (g Grouping[K, T]) Len() int { return len(g.values) }

// All iterates over the elements of the group, in source order.
func (g Grouping[K, T]) All() iter.Seq[T] { return slices.Values(g.values) }

// Values returns a copy of the group's elements.
func (g Grouping[K, T]) Values() []T { return slices.Clone(g.values) }

// GroupBy groups the elements of the source by key. Lazy.
//
// The groups come in ascending key order, and the elements within a group keep their source order.
// Every traversal of the result materialises and sorts the whole source again,
// so when the groups are needed more than once, collect them with ToList first.
func GroupBy[T any, K types.Ordered](src iter.Seq[T], key func(T) K) iter.Seq[Grouping[K, T]] {
	return GroupByFunc(src, key, cmp.Compare[K])
}

// GroupByFunc is GroupBy for keys which are compared with an explicit compare function. Lazy.
// Two keys belong to the same group when compare reports them as equal.
func GroupByFunc[T, K any](src iter.Seq[T], key func(T) K, compare func(a, b K) int) iter.Seq[Grouping[K, T]] {
	return Lazy(src, func(src iter.Seq[T]) iter.Seq[Grouping[K, T]] {
		return func(yield func(Grouping[K, T]) bool) {
			sorted := sortByKey(src, key, compare)
			for begin := 0; begin < len(sorted); {
				end := begin + 1
				for end < len(sorted) && compare(sorted[begin].Key, sorted[end].Key) == 0 {
					end++
				}
				g := Grouping[K, T]{
					key:    sorted[begin].Key,
					values: values(sorted[begin:end]),
				}
				if !yield(g) {
					return
				}
				begin = end
			}
		}
	})
}
