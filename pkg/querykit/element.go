package querykit

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// First returns the first element of the source. Eager.
// ErrEmptySequence is returned when the source has no elements.
func First[T any](src iter.Seq[T]) (T, error) {
	if v, ok := first(src); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptySequence
}

// FirstOrNone returns the first element of the source,
// or an empty optional.Value when the source has no elements. Eager.
func FirstOrNone[T any](src iter.Seq[T]) optional.Value[T] {
	if v, ok := first(src); ok {
		return optional.Of(v)
	}
	return optional.Empty[T]()
}

func first[T any](src iter.Seq[T]) (T, bool) {
	if src != nil {
		for v := range src {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element of the source. Eager.
//
// The source is walked forward until its end, keeping the most recent element,
// so it works with any sequence, but never returns with an infinite one.
// ErrEmptySequence is returned when the source has no elements.
func Last[T any](src iter.Seq[T]) (T, error) {
	if v, ok := last(src); ok {
		return v, nil
	}
	var zero T
	return zero, ErrEmptySequence
}

// LastOrNone returns the last element of the source,
// or an empty optional.Value when the source has no elements. Eager.
func LastOrNone[T any](src iter.Seq[T]) optional.Value[T] {
	if v, ok := last(src); ok {
		return optional.Of(v)
	}
	return optional.Empty[T]()
}

func last[T any](src iter.Seq[T]) (T, bool) {
	var (
		v  T
		ok bool
	)
	if src == nil {
		return v, ok
	}
	for e := range src {
		v, ok = e, true
	}
	return v, ok
}

// Single returns the only element of the source. Eager.
//
// ErrEmptySequence is returned for an empty source,
// and ErrMoreThanOneElement when a second element exists.
// The source is not consumed beyond its second element.
func Single[T any](src iter.Seq[T]) (T, error) {
	v, n := single(src)
	switch n {
	case 0:
		return v, ErrEmptySequence
	case 1:
		return v, nil
	default:
		var zero T
		return zero, ErrMoreThanOneElement
	}
}

// SingleOrNone returns the only element of the source,
// or an empty optional.Value when the source has no elements. Eager.
//
// Having more than one element is still an error, ErrMoreThanOneElement is returned.
func SingleOrNone[T any](src iter.Seq[T]) (optional.Value[T], error) {
	v, n := single(src)
	switch n {
	case 0:
		return optional.Empty[T](), nil
	case 1:
		return optional.Of(v), nil
	default:
		return optional.Empty[T](), ErrMoreThanOneElement
	}
}

// single reads at most two elements, and reports how many it found.
func single[T any](src iter.Seq[T]) (T, int) {
	var (
		v T
		n int
	)
	if src == nil {
		return v, n
	}
	for e := range src {
		n++
		if n == 1 {
			v = e
			continue
		}
		break
	}
	return v, n
}
