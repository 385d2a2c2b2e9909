package searcher

import (
	"errors"
	"strings"

	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

var ErrEmptyQuery = errors.New("query is empty")

type Searcher struct {
	Idx                DynamicIndexer
	SpellCorrector     SpellCorrectorI
	DocStore           SearcherDocStore
	similiarityScoring SimiliarityScoring
	bm25Params         BM25Params
}

func NewSearcher(idx DynamicIndexer, docStore SearcherDocStore, spell SpellCorrectorI,
	scoring SimiliarityScoring, bm25Params BM25Params) *Searcher {
	return &Searcher{Idx: idx, DocStore: docStore, SpellCorrector: spell,
		similiarityScoring: scoring, bm25Params: bm25Params}
}

// SearchResult model info
// @Description ranked documents of a free form query, with the spelling corrections applied to it.
type SearchResult struct {
	Query          string                         `json:"query"`
	CorrectedQuery string                         `json:"corrected_query"`
	Corrections    map[string]string              `json:"corrections,omitempty"`
	Scoring        string                         `json:"scoring"`
	Total          int                            `json:"total"`
	Docs           []datastructure.ScoredDocument `json:"docs"`
}

// FreeFormQuery ranks the corpus against query and returns at most k documents
// starting at offset. Query terms outside the vocabulary are replaced by their
// closest index term when one exists within EDIT_DISTANCE. Documents with a zero
// score are not returned.
func (se *Searcher) FreeFormQuery(query string, k, offset int) (SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, pkg.WrapErrorf(ErrEmptyQuery, pkg.ErrBadParamInput, "free form query")
	}
	if k <= 0 {
		k = DEFAULT_TOP_K
	}
	if offset < 0 {
		offset = 0
	}

	queryTerms := se.Idx.Analyze(query)
	corrections := make(map[string]string)
	termIDMap := se.Idx.GetTermIDMap()

	for i, term := range queryTerms {
		if termIDMap.IsInVocabulary(term) {
			continue
		}
		corrected, err := se.correctTerm(term)
		if err != nil {
			return SearchResult{}, err
		}
		if corrected != "" {
			corrections[term] = corrected
			queryTerms[i] = corrected
		}
	}

	var ranked []datastructure.ScoredDocument
	switch se.similiarityScoring {
	case BM25:
		ranked = rankBM25Terms(se.Idx, queryTerms, se.bm25Params)
	default:
		ranked = rankVSMTerms(se.Idx, queryTerms)
	}

	relevant := make([]datastructure.ScoredDocument, 0, len(ranked))
	for _, doc := range ranked {
		if doc.Score > 0 {
			relevant = append(relevant, doc)
		}
	}

	result := SearchResult{
		Query:          query,
		CorrectedQuery: strings.Join(queryTerms, " "),
		Corrections:    corrections,
		Scoring:        se.similiarityScoring.String(),
		Total:          len(relevant),
		Docs:           make([]datastructure.ScoredDocument, 0, k),
	}

	for i := offset; i < len(relevant) && i < offset+k; i++ {
		scored := relevant[i]
		if se.DocStore != nil {
			doc, err := se.DocStore.GetDoc(scored.Document.ID)
			if err != nil {
				return SearchResult{}, err
			}
			scored.Document = doc
		}
		result.Docs = append(result.Docs, scored)
	}
	return result, nil
}

func (se *Searcher) correctTerm(term string) (string, error) {
	if se.SpellCorrector == nil {
		return "", nil
	}
	for editDistance := 1; editDistance <= EDIT_DISTANCE; editDistance++ {
		candidates, err := se.SpellCorrector.GetWordCandidates(term, editDistance)
		if err != nil {
			return "", err
		}
		if len(candidates) > 0 {
			return candidates[0].Word, nil
		}
	}
	return "", nil
}

// BooleanQuery evaluates an AND/OR/NOT expression and returns the matching
// documents in docID order.
func (se *Searcher) BooleanQuery(query string) ([]datastructure.Document, error) {
	if strings.TrimSpace(query) == "" {
		return []datastructure.Document{}, pkg.WrapErrorf(ErrEmptyQuery, pkg.ErrBadParamInput, "boolean query")
	}
	docIDs, err := se.Idx.BooleanQuery(query)
	if err != nil {
		return []datastructure.Document{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "boolean query")
	}

	docs := make([]datastructure.Document, 0, len(docIDs))
	byID := make(map[int]datastructure.Document)
	if se.DocStore == nil {
		for _, doc := range se.Idx.Documents() {
			byID[doc.ID] = doc
		}
	}
	for _, docID := range docIDs {
		if se.DocStore == nil {
			docs = append(docs, byID[docID])
			continue
		}
		doc, err := se.DocStore.GetDoc(docID)
		if err != nil {
			return []datastructure.Document{}, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Autocomplete returns up to k index terms starting with prefix, the most
// frequent in the corpus first.
func (se *Searcher) Autocomplete(prefix string, k int) ([]string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || se.SpellCorrector == nil {
		return []string{}, nil
	}
	if k <= 0 {
		k = kAutoComplete
	}

	matched, err := se.SpellCorrector.GetMatchedWordBasedOnPrefix(prefix)
	if err != nil {
		return []string{}, err
	}

	return pkg.TopK(matched, se.Idx.CollectionFrequency, k), nil
}
