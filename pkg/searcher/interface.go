package searcher

import (
	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// CorpusStats is what the weighting functions need to know about a collection.
type CorpusStats interface {
	DocumentFrequency(term string) int
	GetDocsCount() int
}

// CorpusIndex is an analyzed collection that can be ranked.
type CorpusIndex interface {
	CorpusStats
	Documents() []datastructure.Document
	DocTokens(docID int) []string
	GetAverageDocLength() float64
	Analyze(text string) []string
}

type DynamicIndexer interface {
	CorpusIndex
	NormalizeTerm(term string) string
	CollectionFrequency(term string) int
	GetTermIDMap() *pkg.IDMap
	GetSortedTerms() []string
	BooleanQuery(query string) ([]int, error)
}

type SearcherDocStore interface {
	GetDoc(docID int) (datastructure.Document, error)
}

type SpellCorrectorI interface {
	GetWordCandidates(word string, editDistance int) ([]Suggestion, error)
	GetMatchedWordBasedOnPrefix(prefix string) ([]string, error)
}
