// Package queryop turns the querykit operators into values.
//
// An operator is configured first, and applied to a source later,
// which allows building a query once and running it against many sources.
//
//	adults := queryop.Then(
//		queryop.Where(func(p Person) bool { return 18 <= p.Age }),
//		queryop.Select(func(p Person) string { return p.Name }),
//	)
//	names := queryop.Eval(people, queryop.Finally(adults, queryop.ToList[string]()))
package queryop

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"
	"go.llib.dev/querykit/pkg/querykit"
)

// Lazy is an operator that wraps a source into a new re-iterable sequence.
type Lazy[In, Out any] func(iter.Seq[In]) iter.Seq[Out]

// Eager is an operator that consumes a source and returns a result.
type Eager[In, R any] func(iter.Seq[In]) R

func Where[T any](predicate func(T) bool) Lazy[T, T] {
	return func(src iter.Seq[T]) iter.Seq[T] { return querykit.Where(src, predicate) }
}

func Select[From, To any](selector func(From) To) Lazy[From, To] {
	return func(src iter.Seq[From]) iter.Seq[To] { return querykit.Select(src, selector) }
}

func GroupBy[T any, K types.Ordered](key func(T) K) Lazy[T, querykit.Grouping[K, T]] {
	return func(src iter.Seq[T]) iter.Seq[querykit.Grouping[K, T]] { return querykit.GroupBy(src, key) }
}

func Distinct[T comparable]() Lazy[T, T] {
	return querykit.Distinct[T]
}

func Count[T any]() Eager[T, int] {
	return querykit.Count[T]
}

func ToList[T any]() Eager[T, []T] {
	return querykit.ToList[T]
}

func ToDictionary[T any, K comparable](key func(T) K) Eager[T, map[K]T] {
	return func(src iter.Seq[T]) map[K]T { return querykit.ToDictionary(src, key) }
}

func ToDictionaryWith[T any, K comparable, V any](key func(T) K, value func(T) V) Eager[T, map[K]V] {
	return func(src iter.Seq[T]) map[K]V { return querykit.ToDictionaryWith(src, key, value) }
}

func OrderBy[T any, K types.Ordered](key func(T) K) Eager[T, []T] {
	return func(src iter.Seq[T]) []T { return querykit.OrderBy(src, key) }
}

func OrderByDescending[T any, K types.Ordered](key func(T) K) Eager[T, []T] {
	return func(src iter.Seq[T]) []T { return querykit.OrderByDescending(src, key) }
}

// Result is the outcome of an eager operator that can fail.
type Result[T any] struct {
	Value T
	Err   error
}

func toResult[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

func First[T any]() Eager[T, Result[T]] {
	return func(src iter.Seq[T]) Result[T] { return toResult(querykit.First(src)) }
}

func FirstOrNone[T any]() Eager[T, optional.Value[T]] {
	return querykit.FirstOrNone[T]
}

func Last[T any]() Eager[T, Result[T]] {
	return func(src iter.Seq[T]) Result[T] { return toResult(querykit.Last(src)) }
}

func LastOrNone[T any]() Eager[T, optional.Value[T]] {
	return querykit.LastOrNone[T]
}

func Single[T any]() Eager[T, Result[T]] {
	return func(src iter.Seq[T]) Result[T] { return toResult(querykit.Single(src)) }
}

func SingleOrNone[T any]() Eager[T, Result[optional.Value[T]]] {
	return func(src iter.Seq[T]) Result[optional.Value[T]] { return toResult(querykit.SingleOrNone(src)) }
}

func Any[T any]() Eager[T, bool] {
	return querykit.Any[T]
}

func AnyFunc[T any](predicate func(T) bool) Eager[T, bool] {
	return func(src iter.Seq[T]) bool { return querykit.AnyFunc(src, predicate) }
}
