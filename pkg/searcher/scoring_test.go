package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	df        map[string]int
	docsCount int
	avgDocLen float64
}

func (f fakeStats) DocumentFrequency(term string) int { return f.df[term] }
func (f fakeStats) GetDocsCount() int                 { return f.docsCount }
func (f fakeStats) GetAverageDocLength() float64      { return f.avgDocLen }

func TestTermFrequency(t *testing.T) {
	assert.InDelta(t, 0.5, TermFrequency("learn", []string{"learn", "machine", "learn", "deep"}), 1e-12)
	assert.Equal(t, 0.0, TermFrequency("learn", []string{}))
	assert.Equal(t, 0.0, TermFrequency("quantum", []string{"learn"}))
}

func TestInverseDocumentFrequency(t *testing.T) {
	assert.InDelta(t, math.Log(5), InverseDocumentFrequency(5, 1), 1e-12)
	assert.Equal(t, 0.0, InverseDocumentFrequency(5, 5))
	assert.Equal(t, 0.0, InverseDocumentFrequency(5, 0))
	assert.Equal(t, 0.0, InverseDocumentFrequency(0, 0))
}

func TestCosine(t *testing.T) {
	t.Run("zero magnitude", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine(Vector{}, Vector{"a": 1}))
		assert.Equal(t, 0.0, Cosine(Vector{"a": 0}, Vector{"a": 1}))
	})

	t.Run("disjoint vectors", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine(Vector{"a": 1, "b": 2}, Vector{"c": 3}))
	})

	t.Run("parallel vectors", func(t *testing.T) {
		assert.InDelta(t, 1.0, Cosine(Vector{"a": 1, "b": 2}, Vector{"a": 2, "b": 4}), 1e-12)
	})

	t.Run("bounded over the corpus", func(t *testing.T) {
		idx := buildLabIndex(t)
		queries := []string{"machine learning", "retrieval retrieval color", "search engines", "quantum", "web"}
		for _, q := range queries {
			for _, scored := range RankVSM(idx, q) {
				assert.GreaterOrEqual(t, scored.Score, 0.0)
				assert.LessOrEqual(t, scored.Score, 1.0)
			}
		}
	})
}

func TestRankVSM(t *testing.T) {
	idx := buildLabIndex(t)

	ranked := RankVSM(idx, "Machine Learning Fundamentals")
	require.Len(t, ranked, 5)

	assert.Equal(t, 0, ranked[0].Document.ID)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.Equal(t, 1, ranked[0].Rank)

	assert.Equal(t, 2, ranked[1].Document.ID)
	assert.Greater(t, ranked[1].Score, 0.0)
	assert.Less(t, ranked[1].Score, 1.0)

	// documents without a shared term score 0 and keep corpus order.
	assert.Equal(t, []int{1, 3, 4}, docIDs(ranked[2:]))
	for _, scored := range ranked[2:] {
		assert.Equal(t, 0.0, scored.Score)
	}
	assert.Equal(t, 5, ranked[4].Rank)
}

func TestBM25TermScore(t *testing.T) {
	params := BM25Params{K1: 1.5, B: 0.75}

	t.Run("monotone with saturation", func(t *testing.T) {
		prevScore, prevGain := 0.0, math.Inf(1)
		for tf := 1; tf <= 20; tf++ {
			score := BM25TermScore(float64(tf), 1, 5, 10, 10, params)
			gain := score - prevScore
			assert.Greater(t, gain, 0.0)
			assert.Less(t, gain, prevGain)
			prevScore, prevGain = score, gain
		}
		// bounded by idf * (k1+1).
		assert.Less(t, prevScore, math.Log(5)*(params.K1+1))
	})

	t.Run("no occurrence scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, BM25TermScore(0, 1, 5, 10, 10, params))
	})

	t.Run("k1 zero ignores tf", func(t *testing.T) {
		p := BM25Params{K1: 0, B: 0.75}
		assert.InDelta(t, math.Log(5), BM25TermScore(3, 1, 5, 10, 10, p), 1e-12)
	})

	t.Run("longer documents score lower", func(t *testing.T) {
		short := BM25TermScore(2, 1, 5, 5, 10, params)
		long := BM25TermScore(2, 1, 5, 20, 10, params)
		assert.Greater(t, short, long)
	})

	t.Run("zero average length means no normalization", func(t *testing.T) {
		assert.Equal(t, BM25TermScore(2, 1, 5, 10, 10, params), BM25TermScore(2, 1, 5, 7, 0, params))
	})
}

func TestBM25Score(t *testing.T) {
	stats := fakeStats{df: map[string]int{"retrieval": 2, "color": 1}, docsCount: 5, avgDocLen: 4}

	assert.Equal(t, 0.0, BM25Score([]string{"quantum"}, []string{"retrieval", "color"}, stats, DefaultBM25Params))

	single := BM25Score([]string{"color"}, []string{"color", "image"}, stats, DefaultBM25Params)
	repeated := BM25Score([]string{"color", "color"}, []string{"color", "image"}, stats, DefaultBM25Params)
	assert.Equal(t, single, repeated)

	both := BM25Score([]string{"color", "retrieval"}, []string{"color", "retrieval"}, stats, DefaultBM25Params)
	assert.Greater(t, both, single)
}

func TestRankBM25(t *testing.T) {
	idx := buildLabIndex(t)

	ranked := RankBM25(idx, "retrieval", DefaultBM25Params)
	require.Len(t, ranked, 5)
	assert.Equal(t, []int{1, 3}, docIDs(ranked[:2]))
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	for _, scored := range ranked[2:] {
		assert.Equal(t, 0.0, scored.Score)
	}
}

func TestStructured(t *testing.T) {
	docs := labCorpus()
	docs[1].Abstract = "An introduction to indexing"
	docs[1].References = "Manning et al. 2008"

	t.Run("parse", func(t *testing.T) {
		got := ParseFieldQuery(`title:Retrieval body:"inverted index" garbage foo:bar title:`)
		assert.Equal(t, []FieldConstraint{
			{Field: "title", Term: "Retrieval", Valid: true},
			{Field: "body", Term: "inverted index", Valid: true},
			{Field: "garbage", Term: "", Valid: false},
			{Field: "foo", Term: "bar", Valid: false},
			{Field: "title", Term: "", Valid: false},
		}, got)
	})

	t.Run("conjunction of case insensitive containment", func(t *testing.T) {
		constraints := ParseFieldQuery(`title:RETRIEVAL AND body:"inverted index"`)
		assert.True(t, MatchesStructure(docs[1], constraints))
		assert.False(t, MatchesStructure(docs[3], constraints))

		score, ok := StructuredScore(docs[1], constraints, DefaultFieldWeights())
		assert.True(t, ok)
		assert.Equal(t, 3.0, score)
	})

	t.Run("weights are a table", func(t *testing.T) {
		constraints := ParseFieldQuery("abstract:indexing references:manning")
		score, ok := StructuredScore(docs[1], constraints, DefaultFieldWeights())
		assert.True(t, ok)
		assert.Equal(t, 2.0, score)

		score, ok = StructuredScore(docs[1], constraints, FieldWeights{"abstract": 1, "references": 1})
		assert.True(t, ok)
		assert.Equal(t, 2.0, score)
	})

	t.Run("malformed or empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, RankStructured(docs, "title", DefaultFieldWeights()))
		assert.Empty(t, RankStructured(docs, "", DefaultFieldWeights()))
		assert.Empty(t, RankStructured(docs, "title:retrieval isbn:123", DefaultFieldWeights()))
	})

	t.Run("rank keeps corpus order on ties", func(t *testing.T) {
		ranked := RankStructured(docs, "title:retrieval", DefaultFieldWeights())
		assert.Equal(t, []int{1, 3}, docIDs(ranked))
		assert.Equal(t, 2.0, ranked[1].Score)
		assert.Equal(t, 2, ranked[1].Rank)
	})
}

func TestRocchio(t *testing.T) {
	t.Run("centroid", func(t *testing.T) {
		assert.Empty(t, Centroid(nil))
		assert.Equal(t, Vector{"a": 0.5, "b": 2}, Centroid([]Vector{{"a": 1, "b": 1}, {"b": 3}}))
	})

	t.Run("moves the query", func(t *testing.T) {
		modified := Rocchio(Vector{"a": 1},
			[]Vector{{"a": 1, "b": 1}, {"b": 3}},
			[]Vector{{"c": 1}},
			RocchioParams{Alpha: 1, Beta: 0.5, Gamma: 1})
		assert.Equal(t, Vector{"a": 1.25, "b": 1}, modified)
	})

	t.Run("empty feedback keeps the scaled query", func(t *testing.T) {
		modified := Rocchio(Vector{"a": 2}, nil, nil, RocchioParams{Alpha: 0.5})
		assert.Equal(t, Vector{"a": 1}, modified)
	})

	t.Run("feedback over the corpus", func(t *testing.T) {
		idx := buildLabIndex(t)
		_, ranked := RocchioFeedback(idx, "learning", []int{2}, []int{0}, DefaultRocchioParams)
		assert.Equal(t, 2, ranked[0].Document.ID)
	})
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"retrieval", "retreival", 2},
		{"café", "cafe", 1},
		{"index", "index", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
			assert.Equal(t, 0, Levenshtein(tt.a, tt.a))
		})
	}
}

func TestSuggest(t *testing.T) {
	t.Run("closest first, word itself excluded", func(t *testing.T) {
		assert.Equal(t, []Suggestion{{Word: "indexes", Distance: 2}},
			Suggest("index", []string{"index", "indexes", "ranking"}))
		assert.Equal(t, []Suggestion{{Word: "bat", Distance: 1}, {Word: "cars", Distance: 2}},
			Suggest("cat", []string{"cars", "bat", "dog"}))
	})

	t.Run("capped to three in dictionary order", func(t *testing.T) {
		got := Suggest("cat", []string{"cat", "bat", "cut", "cap", "car"})
		assert.Equal(t, []Suggestion{
			{Word: "bat", Distance: 1},
			{Word: "cut", Distance: 1},
			{Word: "cap", Distance: 1},
		}, got)
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Equal(t, []Suggestion{}, Suggest("xyz", []string{"retrieval"}))
	})
}

func TestSpellCorrector(t *testing.T) {
	freq := map[string]int{"color": 4, "colour": 1, "learn": 2, "retrieval": 3, "search": 2}
	sc, err := NewSpellCorrector()
	require.NoError(t, err)
	require.NoError(t, sc.BuildFiniteStateTransducerSortedTerms(
		[]string{"color", "colour", "learn", "retrieval", "search"},
		func(term string) int { return freq[term] }))

	t.Run("one edit", func(t *testing.T) {
		got, err := sc.GetWordCandidates("colr", 1)
		require.NoError(t, err)
		assert.Equal(t, []Suggestion{{Word: "color", Distance: 1, Frequency: 4}}, got)
	})

	t.Run("two edits sorted by distance", func(t *testing.T) {
		got, err := sc.GetWordCandidates("colr", 2)
		require.NoError(t, err)
		assert.Equal(t, []Suggestion{
			{Word: "color", Distance: 1, Frequency: 4},
			{Word: "colour", Distance: 2, Frequency: 1},
		}, got)
	})

	t.Run("unsupported distance", func(t *testing.T) {
		_, err := sc.GetWordCandidates("colr", 3)
		assert.Error(t, err)
	})

	t.Run("prefix", func(t *testing.T) {
		got, err := sc.GetMatchedWordBasedOnPrefix("col")
		require.NoError(t, err)
		assert.Equal(t, []string{"color", "colour"}, got)
	})
}
