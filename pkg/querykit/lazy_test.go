package querykit_test

//go:generate mockgen -destination lazy_mocks_test.go -source lazy_test.go -package querykit_test

import (
	"iter"
	"slices"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/querykit/pkg/querykit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// ValuesSource is a re-iterable upstream, which hands out a fresh sequence on every call.
type ValuesSource interface {
	Values() iter.Seq[int]
}

func ExampleLazy() {
	src := []int{1, 2, 3}

	doubled := querykit.Lazy(src, func(src []int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, v := range src {
				if !yield(v * 2) {
					return
				}
			}
		}
	})

	_ = querykit.ToList(doubled) // []int{2, 4, 6}
	_ = querykit.ToList(doubled) // []int{2, 4, 6}
}

func TestLazy(t *testing.T) {
	s := testcase.NewSpec(t)

	calls := testcase.Let(s, func(t *testcase.T) *int { return new(int) })

	subject := func(t *testcase.T, upstream []int) iter.Seq[int] {
		return querykit.Lazy(upstream, func(upstream []int) iter.Seq[int] {
			*calls.Get(t)++
			return slices.Values(upstream)
		})
	}

	s.Test("transform is not called before the sequence is ranged over", func(t *testcase.T) {
		_ = subject(t, []int{1, 2, 3})
		assert.Equal(t, 0, *calls.Get(t))
	})

	s.Test("every traversal calls the transform against the original upstream", func(t *testcase.T) {
		seq := subject(t, []int{1, 2, 3})

		assert.Equal(t, []int{1, 2, 3}, querykit.ToList(seq))
		assert.Equal(t, []int{1, 2, 3}, querykit.ToList(seq))
		assert.Equal(t, 2, *calls.Get(t))
	})

	s.Test("interrupted traversal does not affect the next one", func(t *testcase.T) {
		seq := subject(t, []int{1, 2, 3})
		for range seq {
			break
		}
		assert.Equal(t, []int{1, 2, 3}, querykit.ToList(seq))
	})

	s.Test("nil transform result means an empty traversal", func(t *testcase.T) {
		seq := querykit.Lazy(42, func(int) iter.Seq[string] { return nil })
		assert.Empty(t, querykit.ToList(seq))
	})

	s.Test("panic from the transform surfaces to the traversal that requested it", func(t *testcase.T) {
		var fail = true
		seq := querykit.Lazy([]int{1}, func(upstream []int) iter.Seq[int] {
			if fail {
				panic("boom")
			}
			return slices.Values(upstream)
		})
		assert.Panic(t, func() { querykit.ToList(seq) })
		fail = false
		assert.Equal(t, []int{1}, querykit.ToList(seq))
	})

	s.Test("concurrent traversals are independent", func(t *testcase.T) {
		values := make([]int, 0)
		for n := range querykit.IntRange(1, t.Random.IntBetween(10, 100)) {
			values = append(values, n)
		}
		seq := querykit.Where(slices.Values(values), func(n int) bool { return n%2 == 0 })

		var (
			wg      sync.WaitGroup
			results = make([][]int, 8)
		)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = querykit.ToList(seq)
			}()
		}
		wg.Wait()

		for _, got := range results {
			assert.Equal(t, results[0], got)
		}
	})

	s.Test("the upstream is asked for a fresh sequence on each traversal", func(t *testcase.T) {
		ctrl := gomock.NewController(t.TB)
		defer ctrl.Finish()

		src := NewMockValuesSource(ctrl)
		src.EXPECT().Values().Return(slices.Values([]int{1, 2, 3})).Times(2)

		seq := querykit.Lazy[ValuesSource](src, func(src ValuesSource) iter.Seq[int] {
			return querykit.Where(src.Values(), func(n int) bool { return n != 2 })
		})
		assert.Equal(t, []int{1, 3}, querykit.ToList(seq))
		assert.Equal(t, []int{1, 3}, querykit.ToList(seq))
	})

	s.When("upstream can be traversed only once", func(s *testcase.Spec) {
		s.Then("only the first traversal yields values", func(t *testcase.T) {
			src := querykit.Once(slices.Values([]int{1, 2, 3}))
			seq := querykit.Select(src, func(n int) int { return n * 10 })

			assert.Equal(t, []int{10, 20, 30}, querykit.ToList(seq))
			assert.Empty(t, querykit.ToList(seq))
		})
	})
}

func TestLazyErr(t *testing.T) {
	var calls int
	seq := querykit.LazyErr([]int{1, 2}, func(upstream []int) querykit.ErrSeq[int] {
		calls++
		return querykit.ToErrSeq(slices.Values(upstream))
	})

	for range 2 {
		vs, err := querykit.ToListErr(seq)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, vs)
	}
	assert.Equal(t, 2, calls)
}
