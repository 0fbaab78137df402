package querykit

import (
	"iter"
	"sync"

	"go.llib.dev/querykit/pkg/errorkit"
)

// ToErrSeq will turn a iter.Seq[T] into an iter.Seq2[T, error] iterator,
// and use the error function to yield potential issues with the iteration.
// The error functions are checked once the source is exhausted.
func ToErrSeq[T any](src iter.Seq[T], errFuncs ...ErrFunc) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		for v := range src {
			if !yield(v, nil) {
				return
			}
		}
		if 0 < len(errFuncs) {
			if err := errorkit.MergeErrFunc(errFuncs...)(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}

// WhereErr is Where with a predicate that can fail. Lazy.
//
// The first error, either from the source or from the predicate, is yielded and ends the traversal.
func WhereErr[T any](src ErrSeq[T], predicate func(T) (bool, error)) ErrSeq[T] {
	return LazyErr(src, func(src ErrSeq[T]) ErrSeq[T] {
		return func(yield func(T, error) bool) {
			for v, err := range src {
				if err == nil {
					var ok bool
					ok, err = predicate(v)
					if err == nil && !ok {
						continue
					}
				}
				if err != nil {
					var zero T
					yield(zero, err)
					return
				}
				if !yield(v, nil) {
					return
				}
			}
		}
	})
}

// SelectErr is Select with a selector that can fail. Lazy.
//
// The first error, either from the source or from the selector, is yielded and ends the traversal.
func SelectErr[From, To any](src ErrSeq[From], selector func(From) (To, error)) ErrSeq[To] {
	return LazyErr(src, func(src ErrSeq[From]) ErrSeq[To] {
		return func(yield func(To, error) bool) {
			for v, err := range src {
				var out To
				if err == nil {
					out, err = selector(v)
				}
				if err != nil {
					var zero To
					yield(zero, err)
					return
				}
				if !yield(out, nil) {
					return
				}
			}
		}
	})
}

// SplitErr will split an ErrSeq into a iter.Seq[T] plus an error retrival func.
//
// The values are yielded until the first error, which ends the traversal.
// The error func reports the error of the most recent traversal,
// every new traversal starts with a clean slate.
func SplitErr[T any](src ErrSeq[T]) (iter.Seq[T], ErrFunc) {
	var (
		m       sync.RWMutex
		lastErr error
	)
	return func(yield func(T) bool) {
			m.Lock()
			lastErr = nil
			m.Unlock()
			for v, err := range src {
				if err != nil {
					m.Lock()
					lastErr = err
					m.Unlock()
					return
				}
				if !yield(v) {
					return
				}
			}
		},
		func() error {
			m.RLock()
			defer m.RUnlock()
			return lastErr
		}
}

// ToListErr collects the values of an ErrSeq until its first error. Eager.
// The values collected before the error are returned along with it.
func ToListErr[T any](src ErrSeq[T]) ([]T, error) {
	var vs = make([]T, 0)
	if src == nil {
		return vs, nil
	}
	for v, err := range src {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// CountErr counts the values of an ErrSeq. Eager.
// On error, the count so far is returned along with the error.
func CountErr[T any](src ErrSeq[T]) (int, error) {
	var total int
	if src == nil {
		return total, nil
	}
	for _, err := range src {
		if err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}

// FirstErr returns the first value of an ErrSeq. Eager.
// ErrEmptySequence is returned when the sequence has no values.
func FirstErr[T any](src ErrSeq[T]) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrEmptySequence
	}
	for v, err := range src {
		if err != nil {
			return zero, err
		}
		return v, nil
	}
	return zero, ErrEmptySequence
}
