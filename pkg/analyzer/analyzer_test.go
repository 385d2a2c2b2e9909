package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercase and split on punctuation",
			text: "Machine Learning, Fundamentals!",
			want: []string{"machine", "learning", "fundamentals"},
		},
		{
			name: "underscore and digits are word characters",
			text: "bm25 k1_param -- 0.75",
			want: []string{"bm25", "k1_param", "0", "75"},
		},
		{
			name: "only separators",
			text: "  ,;: ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestRemoveStopwords(t *testing.T) {
	tokens := []string{"the", "vector", "space", "and", "the", "model"}
	assert.Equal(t, []string{"vector", "space", "model"}, RemoveStopwords(tokens, DefaultStopwords()))
}

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"learning", "learn"},
		{"indexed", "index"},
		{"matches", "match"},
		{"documents", "document"},
		{"quickly", "quick"},
		{"ranker", "rank"},
		{"fastest", "fast"},
		{"machine", "machine"},
		// "ing" matches but the word is too short, no later suffix matches
		{"sing", "sing"},
		// "ed" too short, nothing else applies
		{"bed", "bed"},
		// "es" is checked before "s"
		{"boxes", "box"},
		// "s" removal allowed once the word is longer than 3
		{"cats", "cat"},
		{"gas", "gas"},
		// "es" is too short, falls through to "s"
		{"goes", "goe"},
		{"tested", "test"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.word))
		})
	}
}

func TestNewAnalyzer(t *testing.T) {
	t.Run("lab analyzer pipeline", func(t *testing.T) {
		a, err := NewAnalyzer("lab")
		require.NoError(t, err)
		assert.Equal(t, []string{"machine", "learn", "fundamental"}, a.Analyze("Machine Learning Fundamentals"))
	})

	t.Run("english analyzer uses snowball", func(t *testing.T) {
		a, err := NewAnalyzer("english")
		require.NoError(t, err)
		assert.Equal(t, []string{"retriev", "system"}, a.Analyze("the retrieval systems"))
	})

	t.Run("indonesian analyzer", func(t *testing.T) {
		a, err := NewAnalyzer("indonesian")
		require.NoError(t, err)
		assert.NotEmpty(t, a.Analyze("sistem temu kembali informasi"))
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := NewAnalyzer("klingon")
		assert.Error(t, err)
	})
}

func TestSteps(t *testing.T) {
	trace := NewLabAnalyzer().Steps("The ranking of documents")
	assert.Equal(t, []string{"the", "ranking", "of", "documents"}, trace.Tokens)
	assert.Equal(t, []string{"ranking", "documents"}, trace.Filtered)
	assert.Equal(t, []string{"rank", "document"}, trace.Stemmed)
	assert.Equal(t, []string{"the", "of"}, trace.Removed)
}
