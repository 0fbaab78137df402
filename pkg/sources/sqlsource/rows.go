package sqlsource

import (
	"io"

	"go.llib.dev/querykit/pkg/errorkit"
	"go.llib.dev/querykit/pkg/querykit"
)

// FromRows allow you to use *sql.Rows as a sequence.
// It allows you to do dynamic filtering and projection on your sql results,
// by chaining querykit operators on top of it.
//
// The result can be ranged over only once, since rows can't be rewound.
// The rows are closed when the traversal ends, even when it is stopped early.
func FromRows[T any](rows Rows, mapper RowMapper[T]) querykit.SingleUseErrSeq[T] {
	return func(yield func(T, error) bool) {
		var stopped bool
		err := scanAll(rows, mapper, func(v T) bool {
			stopped = !yield(v, nil)
			return !stopped
		})
		if err != nil && !stopped {
			var zero T
			yield(zero, err)
		}
	}
}

func scanAll[T any](rows Rows, mapper RowMapper[T], yield func(T) bool) (rErr error) {
	defer errorkit.Finish(&rErr, rows.Close)
	for rows.Next() {
		v, err := mapper.Map(rows)
		if err != nil {
			return err
		}
		if !yield(v) {
			return nil
		}
	}
	return rows.Err()
}

// sql rows dependencies

type RowScanner interface {
	Scan(...any) error
}

type RowMapper[T any] interface {
	Map(s RowScanner) (T, error)
}

type RowMapperFunc[T any] func(RowScanner) (T, error)

func (fn RowMapperFunc[T]) Map(s RowScanner) (T, error) { return fn(s) }

type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}
