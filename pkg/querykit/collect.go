package querykit

import "iter"

// ToList collects every element of the source into a new slice, in source order. Eager.
// The result is never nil, an empty source gives an empty slice.
func ToList[T any](src iter.Seq[T]) []T {
	var vs = make([]T, 0)
	if src == nil {
		return vs
	}
	for v := range src {
		vs = append(vs, v)
	}
	return vs
}

// ToDictionary collects the source into a map, keyed by the key selector. Eager.
//
// When more than one element maps to the same key, the last one wins.
func ToDictionary[T any, K comparable](src iter.Seq[T], key func(T) K) map[K]T {
	return ToDictionaryWith(src, key, func(v T) T { return v })
}

// ToDictionaryWith collects the source into a map, using key for the keys and value for the values. Eager.
//
// When more than one element maps to the same key, the last one wins.
func ToDictionaryWith[T any, K comparable, V any](src iter.Seq[T], key func(T) K, value func(T) V) map[K]V {
	var out = make(map[K]V)
	if src == nil {
		return out
	}
	for v := range src {
		out[key(v)] = value(v)
	}
	return out
}

// Count will iterate over and count the total iterations number. Eager.
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](src iter.Seq[T]) int {
	var total int
	if src == nil {
		return total
	}
	for range src {
		total++
	}
	return total
}
