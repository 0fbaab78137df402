// Package sqlsource turns SQL queries into re-iterable sequences.
//
// A Query executes its statement again on every traversal,
// so a querykit pipeline built on top of Query.All always reflects the current state of the database.
// Any database/sql driver works; the examples use github.com/lib/pq.
package sqlsource

import (
	"context"
	"database/sql"

	"go.llib.dev/querykit/pkg/errorkit"
	"go.llib.dev/querykit/pkg/logger"
	"go.llib.dev/querykit/pkg/querykit"
	"go.llib.dev/querykit/port/option"
)

const ErrNoMapper errorkit.Error = "sqlsource: row mapper is missing"

// Queryer is implemented by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type Config struct {
	Args []any
}

type Option option.Option[Config]

// WithArgs sets the arguments of the query's placeholders.
func WithArgs(args ...any) Option {
	return option.Func[Config](func(c *Config) { c.Args = append(c.Args, args...) })
}

// Query is a SQL statement, whose result rows are mapped into T.
type Query[T any] struct {
	DB     Queryer
	SQL    string
	Args   []any
	Mapper RowMapper[T]
}

func New[T any](db Queryer, query string, mapper RowMapper[T], opts ...Option) Query[T] {
	conf := option.ToConfig[Config](opts)
	return Query[T]{DB: db, SQL: query, Args: conf.Args, Mapper: mapper}
}

// All executes the query and iterates over its rows.
//
// Each traversal runs the query again with its own *sql.Rows,
// which are closed by the end of the traversal.
// Query, scan and mapping errors end the traversal.
func (q Query[T]) All(ctx context.Context) querykit.ErrSeq[T] {
	return querykit.LazyErr(q, func(q Query[T]) querykit.ErrSeq[T] {
		return func(yield func(T, error) bool) {
			if q.Mapper == nil {
				var zero T
				yield(zero, ErrNoMapper)
				return
			}
			logger.Debug(ctx, "sql query traversal started", logger.Field("query", q.SQL))
			rows, err := q.DB.QueryContext(ctx, q.SQL, q.Args...)
			if err != nil {
				logger.Warn(ctx, "sql query failed", logger.ErrField(err), logger.Field("query", q.SQL))
				var zero T
				yield(zero, err)
				return
			}
			for v, err := range FromRows(rows, q.Mapper) {
				if !yield(v, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	})
}
