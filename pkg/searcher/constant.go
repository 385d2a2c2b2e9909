package searcher

import (
	"fmt"
	"strings"
)

const (
	EDIT_DISTANCE   = 2
	MAX_SUGGESTIONS = 3
	DEFAULT_TOP_K   = 10
	kAutoComplete   = 5
)

type SimiliarityScoring int

const (
	TF_IDF_COSINE SimiliarityScoring = iota
	BM25
)

func (s SimiliarityScoring) String() string {
	switch s {
	case BM25:
		return "bm25"
	default:
		return "tfidf"
	}
}

func ParseSimiliarityScoring(s string) (SimiliarityScoring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tfidf", "tf_idf", "vsm", "cosine":
		return TF_IDF_COSINE, nil
	case "bm25":
		return BM25, nil
	default:
		return TF_IDF_COSINE, fmt.Errorf("unknown scoring %q", s)
	}
}
