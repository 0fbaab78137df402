// Package jsonsource iterates over the arrays of a JSON document.
//
// Paths use the gjson path syntax, like "users" or "data.items".
// The document is parsed lazily, on every traversal, and only as far as the consumer pulls.
package jsonsource

import (
	"github.com/tidwall/gjson"
	"go.llib.dev/querykit/pkg/errorkit"
	"go.llib.dev/querykit/pkg/querykit"
	"go.llib.dev/querykit/port/codec"
)

const (
	ErrInvalidDocument errorkit.Error = "jsonsource: invalid JSON document"
	ErrNotArray        errorkit.Error = "jsonsource: value at path is not an array"
)

// Decoder turns one element of a JSON array into a T.
type Decoder[T any] func(gjson.Result) (T, error)

// Unmarshal is the Decoder which unmarshals the raw element with encoding/json.
func Unmarshal[T any]() Decoder[T] {
	return func(r gjson.Result) (T, error) {
		var v T
		err := codec.JSON.Unmarshal([]byte(r.Raw), &v)
		return v, err
	}
}

// Array yields the decoded elements of the JSON array found at path.
// An empty path means the document itself is the array.
//
// An invalid document, or a path which doesn't lead to an array, is an error on traversal.
// A decoding error ends the traversal.
func Array[T any](document []byte, path string, decode Decoder[T]) querykit.ErrSeq[T] {
	return querykit.LazyErr(document, func(document []byte) querykit.ErrSeq[T] {
		return func(yield func(T, error) bool) {
			var zero T
			if !gjson.ValidBytes(document) {
				yield(zero, ErrInvalidDocument)
				return
			}
			res := gjson.ParseBytes(document)
			if path != "" {
				res = res.Get(path)
			}
			if !res.IsArray() {
				yield(zero, ErrNotArray.F("path: %q", path))
				return
			}
			res.ForEach(func(_, elem gjson.Result) bool {
				v, err := decode(elem)
				if err != nil {
					yield(zero, err)
					return false
				}
				return yield(v, nil)
			})
		}
	})
}

// Count tells the length of the JSON array at path, without decoding its elements.
func Count(document []byte, path string) (int, error) {
	if !gjson.ValidBytes(document) {
		return 0, ErrInvalidDocument
	}
	res := gjson.ParseBytes(document)
	if path != "" {
		res = res.Get(path)
	}
	if !res.IsArray() {
		return 0, ErrNotArray.F("path: %q", path)
	}
	return int(gjson.Get(res.Raw, "#").Int()), nil
}
