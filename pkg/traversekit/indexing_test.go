package traversekit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/np/lens"
	"github.com/np/lens/pkg/traversekit"
)

func ExampleIndexing() {
	var trav lens.Traversal[[]string, []string, string, string] = sliceValues[string, string]

	_, _ = traversekit.Indexing(trav)(func(i int, v string) (string, error) {
		fmt.Printf("(%d,%q)\n", i, v)
		return v, nil
	}, []string{"a", "b", "c"})
	// Output: (0,"a")
	// (1,"b")
	// (2,"c")
}

func TestIndexing(t *testing.T) {
	s := testcase.NewSpec(t)

	var trav lens.Traversal[[]string, []string, string, string] = sliceValues[string, string]

	s.Test("elements receive consecutive positions in visitation order, starting at zero", func(t *testcase.T) {
		type pair struct {
			Index int
			Value string
		}
		var pairs []pair
		out, err := traversekit.Indexing(trav)(func(i int, v string) (string, error) {
			pairs = append(pairs, pair{Index: i, Value: v})
			return v, nil
		}, []string{"a", "b", "c"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, out)
		assert.Equal(t, []pair{{0, "a"}, {1, "b"}, {2, "c"}}, pairs)
	})

	s.Test("the mapped values and shape stay those of the underlying traversal", func(t *testcase.T) {
		vs := make([]string, t.Random.IntBetween(3, 7))
		for i := range vs {
			vs[i] = t.Random.String()
		}

		indexed, err := traversekit.Indexing(trav)(func(_ int, v string) (string, error) {
			return v + "!", nil
		}, vs)
		assert.NoError(t, err)

		plain, err := trav(func(v string) (string, error) {
			return v + "!", nil
		}, vs)
		assert.NoError(t, err)
		assert.Equal(t, plain, indexed)
	})

	s.Test("a visit error stops the traversal", func(t *testcase.T) {
		expErr := errors.New("boom")
		_, err := traversekit.Indexing(trav)(func(i int, v string) (string, error) {
			if i == 1 {
				return "", expErr
			}
			return v, nil
		}, []string{"a", "b", "c"})
		assert.ErrorIs(t, err, expErr)
	})
}

func TestIndexingBig(t *testing.T) {
	s := testcase.NewSpec(t)

	var trav lens.Traversal[[]string, []string, string, string] = sliceValues[string, string]

	s.Test("the wide counter assigns the same zero-based consecutive positions", func(t *testcase.T) {
		var indices []int
		out, err := traversekit.IndexingBig(trav)(func(i traversekit.BigIndex, v string) (string, error) {
			n, ok := i.ToInt()
			assert.True(t, ok)
			indices = append(indices, n)
			return v, nil
		}, []string{"a", "b", "c"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, out)
		assert.Equal(t, []int{0, 1, 2}, indices)
	})
}
