// Package boltsource is a re-iterable sequence source backed by a bolt bucket.
//
// Every traversal of Source.All opens its own read transaction,
// so a query built on top of it sees the bucket's content as of the moment it is ranged over.
package boltsource

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/querykit/pkg/errorkit"
	"go.llib.dev/querykit/pkg/logger"
	"go.llib.dev/querykit/pkg/querykit"
	"go.llib.dev/querykit/port/codec"
	"go.llib.dev/querykit/port/option"
)

const ErrNoBucketName errorkit.Error = "boltsource: bucket name is missing"

type Config struct {
	Codec   codec.Codec
	Timeout time.Duration
}

func (c *Config) Init() {
	c.Codec = codec.JSON
	c.Timeout = time.Second
}

type Option option.Option[Config]

// WithCodec sets the encoding of the stored values. The default is JSON.
func WithCodec(c codec.Codec) Option {
	return option.Func[Config](func(cfg *Config) { cfg.Codec = c })
}

// WithTimeout sets how long Open waits for the file lock of the database.
func WithTimeout(d time.Duration) Option {
	return option.Func[Config](func(cfg *Config) { cfg.Timeout = d })
}

// Open opens, or creates, the bolt database at path, and returns a Source for the named bucket.
// The returned Source owns the database, and it must be closed.
func Open[T any](path string, bucket string, opts ...Option) (*Source[T], error) {
	if bucket == "" {
		return nil, ErrNoBucketName
	}
	conf := option.ToConfig[Config](opts)
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: conf.Timeout})
	if err != nil {
		return nil, err
	}
	return &Source[T]{DB: db, Bucket: bucket, Codec: conf.Codec}, nil
}

// Source stores values of T in a bolt bucket, in insertion order.
type Source[T any] struct {
	DB     *bolt.DB
	Bucket string
	Codec  codec.Codec
}

// Close the bolt database and release the file lock
func (s *Source[T]) Close() error {
	return s.DB.Close()
}

// Append stores the values at the end of the bucket, in a single transaction.
func (s *Source[T]) Append(ctx context.Context, vs ...T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(s.Bucket))
		if err != nil {
			return err
		}
		for _, v := range vs {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			data, err := s.codec().Marshal(v)
			if err != nil {
				return err
			}
			if err := bucket.Put(uintToBytes(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// All iterates over the stored values in insertion order.
//
// The sequence can be ranged over many times, each traversal reads the bucket again.
// A value that fails to decode ends the traversal with the decoding error.
// A missing bucket is an empty sequence.
func (s *Source[T]) All(ctx context.Context) querykit.ErrSeq[T] {
	return func(yield func(T, error) bool) {
		ctx := logger.ContextWith(ctx, logger.Field("bucket", s.Bucket))
		logger.Debug(ctx, "bolt traversal started")
		var (
			count   int
			stopped bool
		)
		err := s.DB.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(s.Bucket))
			if bucket == nil {
				return nil
			}
			c := bucket.Cursor()
			for k, data := c.First(); k != nil; k, data = c.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				var v T
				if err := s.codec().Unmarshal(data, &v); err != nil {
					logger.Warn(ctx, "bolt value decoding failed", logger.ErrField(err),
						logger.Field("key", binary.BigEndian.Uint64(k)))
					return err
				}
				count++
				if !yield(v, nil) {
					stopped = true
					return nil
				}
			}
			return nil
		})
		if err != nil && !stopped {
			var zero T
			yield(zero, err)
			return
		}
		logger.Debug(ctx, "bolt traversal finished", logger.Field("count", count))
	}
}

func (s *Source[T]) codec() codec.Codec {
	if s.Codec == nil {
		return codec.JSON
	}
	return s.Codec
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
