package indexkit_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/np/lens"
	"github.com/np/lens/pkg/indexkit"
)

func ExampleWithIndex() {
	visit := indexkit.WithIndex[int, string, string](func(index int, value string) string {
		return fmt.Sprintf("%d:%s", index, value)
	})

	out, _ := visit(0, "a")
	fmt.Println(out)
	// Output: 0:a
}

func TestWithIndex(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("plain function ignores the index", func(t *testing.T) {
		visit := indexkit.WithIndex[int, string, string](strings.ToUpper)
		got, err := visit(rnd.Int(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, "ABC", got)
	})
	t.Run("plain fallible function ignores the index and keeps its error", func(t *testing.T) {
		expErr := errors.New("boom")
		visit := indexkit.WithIndex[int, string, string](func(string) (string, error) {
			return "", expErr
		})
		_, err := visit(rnd.Int(), "abc")
		assert.ErrorIs(t, err, expErr)
	})
	t.Run("index-aware function receives the index", func(t *testing.T) {
		visit := indexkit.WithIndex[int, string, string](func(i int, v string) string {
			return fmt.Sprintf("%s@%d", v, i)
		})
		got, err := visit(42, "v")
		assert.NoError(t, err)
		assert.Equal(t, "v@42", got)
	})
	t.Run("index-aware fallible function passes through unchanged", func(t *testing.T) {
		expErr := errors.New("boom")
		visit := indexkit.WithIndex[int, string, string](func(i int, v string) (string, error) {
			return fmt.Sprintf("%s@%d", v, i), expErr
		})
		got, err := visit(7, "v")
		assert.ErrorIs(t, err, expErr)
		assert.Equal(t, "v@7", got)
	})
}

// sliceValues is the test double traversal of this package's tests,
// visiting slice elements in order.
func sliceValues[T, U any](visit lens.Visit[T, U], vs []T) ([]U, error) {
	if vs == nil {
		return nil, nil
	}
	out := make([]U, 0, len(vs))
	for _, v := range vs {
		u, err := visit(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func TestNoIndex(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a plain traversal runs wherever an index-aware one is expected", func(t *testcase.T) {
		var plain lens.Traversal[[]int, []int, int, int] = sliceValues[int, int]
		indexed := indexkit.NoIndex[string](plain)

		var (
			indices []string
			values  []int
		)
		out, err := indexed(func(i string, v int) (int, error) {
			indices = append(indices, i)
			values = append(values, v)
			return v * 2, nil
		}, []int{1, 2, 3})
		assert.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, out)
		assert.Equal(t, []int{1, 2, 3}, values)
		assert.Equal(t, []string{"", "", ""}, indices)
	})
}

func rowsTraversal[U any]() lens.IxTraversal[int, [][]string, [][]U, []string, []U] {
	return func(visit lens.IxVisit[int, []string, []U], rows [][]string) ([][]U, error) {
		out := make([][]U, 0, len(rows))
		for i, row := range rows {
			u, err := visit(i, row)
			if err != nil {
				return nil, err
			}
			out = append(out, u)
		}
		return out, nil
	}
}

func columnsTraversal[U any]() lens.IxTraversal[int, []string, []U, string, U] {
	return func(visit lens.IxVisit[int, string, U], row []string) ([]U, error) {
		out := make([]U, 0, len(row))
		for i, v := range row {
			u, err := visit(i, v)
			if err != nil {
				return nil, err
			}
			out = append(out, u)
		}
		return out, nil
	}
}

func TestComposePair(t *testing.T) {
	s := testcase.NewSpec(t)

	table := testcase.Let(s, func(t *testcase.T) [][]string {
		return [][]string{
			{"a", "b"},
			{"c"},
		}
	})

	s.Test("each element is identified by its row and column pair", func(t *testcase.T) {
		cells := indexkit.ComposePair(rowsTraversal[string](), columnsTraversal[string]())

		var seen []string
		out, err := cells(func(at indexkit.Pair[int, int], v string) (string, error) {
			seen = append(seen, fmt.Sprintf("%d.%d=%s", at.Outer, at.Inner, v))
			return strings.ToUpper(v), nil
		}, table.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, out)
		assert.Equal(t, []string{"0.0=a", "0.1=b", "1.0=c"}, seen)
	})
}

func TestComposeInner(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("only the inner traversal's index is visible", func(t *testcase.T) {
		cells := indexkit.ComposeInner(rowsTraversal[string](), columnsTraversal[string]())

		var seen []int
		_, err := cells(func(column int, v string) (string, error) {
			seen = append(seen, column)
			return v, nil
		}, [][]string{{"a", "b"}, {"c"}})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 0}, seen)
	})
}

func TestComposeOuter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("only the outer traversal's index is visible", func(t *testcase.T) {
		cells := indexkit.ComposeOuter(rowsTraversal[string](), columnsTraversal[string]())

		var seen []int
		_, err := cells(func(row int, v string) (string, error) {
			seen = append(seen, row)
			return v, nil
		}, [][]string{{"a", "b"}, {"c"}})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 0, 1}, seen)
	})
}

func TestComposeWith(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the combiner shapes the compound index", func(t *testcase.T) {
		cells := indexkit.ComposeWith(rowsTraversal[string](), columnsTraversal[string](),
			func(row, column int) string {
				return fmt.Sprintf("r%dc%d", row, column)
			})

		var seen []string
		_, err := cells(func(at string, v string) (string, error) {
			seen = append(seen, at)
			return v, nil
		}, [][]string{{"a"}, {"b", "c"}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"r0c0", "r1c0", "r1c1"}, seen)
	})

	s.Test("composition is associative up to the combiner", func(t *testcase.T) {
		// three nested slice layers combined with integer addition;
		// addition is associative, so the grouping must not matter
		deep := [][][]string{
			{{"a"}, {"b", "c"}},
			{{"d"}},
		}

		var outermost lens.IxTraversal[int, [][][]string, [][][]string, [][]string, [][]string] = func(
			visit lens.IxVisit[int, [][]string, [][]string], vs [][][]string,
		) ([][][]string, error) {
			out := make([][][]string, 0, len(vs))
			for i, v := range vs {
				u, err := visit(i, v)
				if err != nil {
					return nil, err
				}
				out = append(out, u)
			}
			return out, nil
		}
		middle := func() lens.IxTraversal[int, [][]string, [][]string, []string, []string] {
			return rowsTraversal[string]()
		}
		innermost := columnsTraversal[string]()
		add := func(a, b int) int { return a + b }

		collect := func(t *testcase.T, cells lens.IxTraversal[int, [][][]string, [][][]string, string, string]) []int {
			var seen []int
			_, err := cells(func(sum int, v string) (string, error) {
				seen = append(seen, sum)
				return v, nil
			}, deep)
			assert.NoError(t, err)
			return seen
		}

		leftGrouped := indexkit.ComposeWith(
			indexkit.ComposeWith(outermost, middle(), add),
			innermost, add)
		rightGrouped := indexkit.ComposeWith(outermost,
			indexkit.ComposeWith(middle(), innermost, add), add)

		assert.Equal(t, collect(t, leftGrouped), collect(t, rightGrouped))
	})
}

func TestReindex(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the visible index is the remapped value", func(t *testcase.T) {
		rows := rowsTraversal[string]()
		named := indexkit.Reindex(rows, func(i int) string {
			return fmt.Sprintf("row-%d", i)
		})

		var seen []string
		_, err := named(func(name string, row []string) ([]string, error) {
			seen = append(seen, name)
			return row, nil
		}, [][]string{{"a"}, {"b"}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"row-0", "row-1"}, seen)
	})
}
