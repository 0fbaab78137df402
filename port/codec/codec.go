// Package codec is the port for turning stored bytes into values and back.
//
// The sequence sources use it to decode the records they read,
// and a store can swap the encoding format without touching its queries.
package codec

import "encoding/json"

// Codec bundles a Marshaler and an Unmarshaler.
type Codec interface {
	Marshaler
	Unmarshaler
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal(data []byte, ptr any) error
}

// JSON is the default Codec, backed by encoding/json.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, ptr any) error { return json.Unmarshal(data, ptr) }
