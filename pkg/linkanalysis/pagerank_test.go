package linkanalysis

import (
	"testing"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edges(pairs ...string) []datastructure.Edge {
	out := make([]datastructure.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, datastructure.Edge{From: pairs[i], To: pairs[i+1]})
	}
	return out
}

func TestPageRank(t *testing.T) {
	t.Run("conserves mass without dangling nodes", func(t *testing.T) {
		g := datastructure.NewGraph([]string{"A", "B", "C", "D", "E"},
			edges("A", "B", "A", "C", "B", "C", "C", "A", "D", "C", "E", "A", "E", "D"))
		require.Empty(t, DanglingNodes(g))

		res, err := PageRank(g, 0.85, 20)
		require.NoError(t, err)
		require.Len(t, res.History, 21)
		for i, row := range res.History {
			assert.InDelta(t, 1.0, Sum(row), 1e-9, "iteration %d", i)
		}
		assert.Equal(t, "C", res.Order[0])
		// E has no inlinks, so it keeps only the teleport share.
		assert.InDelta(t, 0.15/5, res.Ranks["E"], 1e-12)
	})

	t.Run("dangling nodes leak mass", func(t *testing.T) {
		g := datastructure.NewGraph([]string{"A", "B", "C"}, edges("A", "B", "B", "C"))
		assert.Equal(t, []string{"C"}, DanglingNodes(g))

		res, err := PageRank(g, 0.85, 10)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, Sum(res.History[0]), 1e-12)
		for i := 1; i < len(res.History); i++ {
			assert.Less(t, Sum(res.History[i]), 1.0)
		}
	})

	t.Run("single iteration by hand", func(t *testing.T) {
		g := datastructure.NewGraph([]string{"A", "B"}, edges("A", "B", "B", "A", "A", "A"))
		res, err := PageRank(g, 0.5, 1)
		require.NoError(t, err)
		// A: 0.25 + 0.5*(0.5/2 + 0.5/1), B: 0.25 + 0.5*(0.5/2)
		assert.InDelta(t, 0.625, res.Ranks["A"], 1e-12)
		assert.InDelta(t, 0.375, res.Ranks["B"], 1e-12)
	})

	t.Run("zero iterations keeps the uniform vector", func(t *testing.T) {
		g := datastructure.NewGraph([]string{"A", "B", "C", "D"}, edges("A", "B"))
		res, err := PageRank(g, 0.85, 0)
		require.NoError(t, err)
		assert.Len(t, res.History, 1)
		assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
		assert.InDelta(t, 0.25, res.Ranks["D"], 1e-12)
	})

	t.Run("empty graph", func(t *testing.T) {
		res, err := PageRank(datastructure.Graph{}, 0.85, 5)
		require.NoError(t, err)
		assert.Empty(t, res.Ranks)
		assert.Empty(t, res.History)
	})

	t.Run("invalid input", func(t *testing.T) {
		g := datastructure.NewGraph([]string{"A"}, nil)
		_, err := PageRank(g, 1.5, 5)
		assert.ErrorIs(t, err, ErrInvalidDamping)

		_, err = PageRank(g, 0.85, -1)
		assert.ErrorIs(t, err, ErrInvalidIterations)

		_, err = PageRank(datastructure.NewGraph([]string{"A"}, edges("A", "Z")), 0.85, 5)
		assert.Error(t, err)

		_, err = PageRank(datastructure.NewGraph([]string{"A", "A"}, nil), 0.85, 5)
		assert.Error(t, err)
	})
}
