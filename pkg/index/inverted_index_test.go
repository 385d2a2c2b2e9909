package index

import (
	"context"
	"testing"

	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []datastructure.Document {
	return []datastructure.Document{
		datastructure.NewDocument(0, "Machine Learning Fundamentals", "", "", ""),
		datastructure.NewDocument(1, "Information Retrieval Systems", "", "boolean retrieval with an inverted index", ""),
		datastructure.NewDocument(2, "Deep Learning for Search", "", "", ""),
		datastructure.NewDocument(3, "Image Retrieval by Color", "", "", ""),
	}
}

func buildTestIndex(t *testing.T, workers int) *InvertedIndex {
	t.Helper()
	idx := NewInvertedIndex(analyzer.NewLabAnalyzer(), workers)
	require.NoError(t, idx.Build(context.Background(), testCorpus()))
	return idx
}

func TestBuild(t *testing.T) {
	idx := buildTestIndex(t, 1)

	t.Run("postings are ascending doc ids", func(t *testing.T) {
		assert.Equal(t, []int{0, 2}, idx.GetPostingListByTerm("learn"))
		assert.Equal(t, []int{1, 3}, idx.GetPostingListByTerm("retrieval"))
		assert.Equal(t, []int{}, idx.GetPostingListByTerm("missing"))
	})

	t.Run("statistics", func(t *testing.T) {
		assert.Equal(t, 4, idx.GetDocsCount())
		assert.Equal(t, 2, idx.DocumentFrequency("learn"))
		assert.Equal(t, 3, idx.CollectionFrequency("retrieval"))
		assert.Equal(t, 2, idx.TermCount(1, "retrieval"))
		assert.Equal(t, 0, idx.TermCount(0, "retrieval"))

		doc, ok := idx.GetDoc(0)
		require.True(t, ok)
		assert.Equal(t, 3, doc.Length)
		assert.Equal(t, []string{"machine", "learn", "fundamental"}, idx.DocTokens(0))
	})

	t.Run("corpus order", func(t *testing.T) {
		assert.Equal(t, 2, idx.DocPosition(2))
		assert.Equal(t, 4, idx.DocPosition(99))
	})

	t.Run("rejects duplicate and negative ids", func(t *testing.T) {
		dup := NewInvertedIndex(analyzer.NewLabAnalyzer(), 1)
		docs := testCorpus()
		docs[1].ID = 0
		assert.Error(t, dup.Build(context.Background(), docs))

		neg := NewInvertedIndex(analyzer.NewLabAnalyzer(), 1)
		assert.Error(t, neg.Build(context.Background(), []datastructure.Document{{ID: -1, Title: "x"}}))
	})
}

func TestParallelBuildMatchesSequential(t *testing.T) {
	seq := buildTestIndex(t, 1)
	par := buildTestIndex(t, 4)

	assert.Equal(t, seq.PostingsByTerm(), par.PostingsByTerm())
	for _, doc := range testCorpus() {
		assert.Equal(t, seq.DocTokens(doc.ID), par.DocTokens(doc.ID))
	}
	assert.Equal(t, seq.GetAverageDocLength(), par.GetAverageDocLength())
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := NewInvertedIndex(analyzer.NewLabAnalyzer(), 1)
	assert.ErrorIs(t, idx.Build(ctx, testCorpus()), context.Canceled)
}

func TestSnapshot(t *testing.T) {
	idx := buildTestIndex(t, 2)
	dir := t.TempDir()

	require.NoError(t, idx.Save(dir))

	loaded, err := LoadInvertedIndex(dir, analyzer.NewLabAnalyzer(), 1)
	require.NoError(t, err)

	assert.Equal(t, idx.PostingsByTerm(), loaded.PostingsByTerm())
	assert.Equal(t, idx.Documents(), loaded.Documents())
	assert.Equal(t, idx.GetAverageDocLength(), loaded.GetAverageDocLength())
	for _, term := range idx.GetSortedTerms() {
		want, _ := idx.TermIDMap.Lookup(term)
		got, ok := loaded.TermIDMap.Lookup(term)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	t.Run("missing snapshot", func(t *testing.T) {
		_, err := LoadInvertedIndex(t.TempDir(), analyzer.NewLabAnalyzer(), 1)
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})
}
