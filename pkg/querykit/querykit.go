// Package querykit provides composable query operators over iter.Seq sequences,
// in the spirit of language integrated queries: filtering, projection, ordering, grouping,
// materialisation and element selection.
//
// # Lazy and eager operators
//
// Every operator belongs to one of two groups.
//
// Lazy operators (Where, Select, GroupBy, Distinct and their variants) return a new iter.Seq.
// Nothing happens until the result is ranged over,
// and every range over the result runs the whole transformation again from the original source.
// The results behave like values: they can be iterated many times,
// and each traversal is independent from the others.
//
// Eager operators (Count, ToList, ToDictionary, OrderBy, First, Last, Single, Any and their variants)
// consume the source at the moment they are called and return a concrete result.
// They end a query chain.
//
// # Sources
//
// An iter.Seq is re-iterable by convention, but some sources can only be walked once,
// like a network stream or a cursor. Lazy operators on top of a SingleUseSeq
// keep working for the first traversal, and yield nothing afterwards.
//
// # Errors
//
// Operators never recover from a panic raised by a predicate or selector.
// Functions that return an error can be used with the ErrSeq based variants,
// such as WhereErr and SelectErr, which stop the traversal at the first error.
package querykit

import (
	"iter"

	"go.llib.dev/querykit/pkg/errorkit"
)

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// After iteration, it is expected to yield no more values.
//
// Lazy operators do not copy or buffer their source,
// thus a query built on top of a SingleUseSeq is also single use.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseErrSeq is an ErrSeq that can only iterated once, like the rows of a database query.
type SingleUseErrSeq[T any] = ErrSeq[T]

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// ErrFunc is the check function that can tell if a traversal that is related to the error function had an issue or not.
type ErrFunc = errorkit.ErrFunc
