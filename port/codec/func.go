package codec

type MarshalerFunc func(v any) ([]byte, error)

func (fn MarshalerFunc) Marshal(v any) ([]byte, error) { return fn(v) }

type UnmarshalerFunc func(data []byte, ptr any) error

func (fn UnmarshalerFunc) Unmarshal(data []byte, ptr any) error { return fn(data, ptr) }

// Func assembles a Codec from a marshal and an unmarshal function.
type Func struct {
	MarshalerFunc
	UnmarshalerFunc
}
