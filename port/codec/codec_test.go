package codec_test

import (
	"testing"

	"go.llib.dev/querykit/port/codec"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleJSON() {
	data, err := codec.JSON.Marshal(map[string]int{"answer": 42})
	if err != nil {
		return
	}
	var v map[string]int
	_ = codec.JSON.Unmarshal(data, &v)
}

func TestJSON(t *testing.T) {
	s := testcase.NewSpec(t)

	type T struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	s.Test("marshal produces JSON", func(t *testcase.T) {
		data, err := codec.JSON.Marshal(T{Name: "Ada", Age: 36})
		assert.NoError(t, err)
		assert.Equal(t, `{"name":"Ada","age":36}`, string(data))
	})

	s.Test("unmarshal into a pointer", func(t *testcase.T) {
		exp := T{Name: t.Random.String(), Age: t.Random.Int()}
		data, err := codec.JSON.Marshal(exp)
		assert.NoError(t, err)

		var got T
		assert.NoError(t, codec.JSON.Unmarshal(data, &got))
		assert.Equal(t, exp, got)
	})

	s.Test("invalid input is an error", func(t *testcase.T) {
		var got T
		assert.Error(t, codec.JSON.Unmarshal([]byte("{"), &got))
	})
}
