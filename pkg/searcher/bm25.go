package searcher

import (
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// BM25Params model info
// @Description okapi bm25 free parameters. k1 controls tf saturation, b controls length normalization.
type BM25Params struct {
	K1 float64 `json:"k1" validate:"gte=0"`
	B  float64 `json:"b" validate:"gte=0,lte=1"`
}

// DefaultBM25Params is only a configuration default; scoring always takes the
// parameters from its caller.
var DefaultBM25Params = BM25Params{K1: 1.5, B: 0.75}

// BM25TermScore = idf * tf(k1+1) / (tf + k1(1-b+b|d|/avgdl)).
// A zero average length is treated as |d|, i.e. no length normalization.
func BM25TermScore(tf float64, df, docsCount int, docLen, avgDocLen float64, params BM25Params) float64 {
	if tf <= 0 {
		return 0
	}
	idf := InverseDocumentFrequency(docsCount, df)

	lengthRatio := 1.0
	if avgDocLen > 0 {
		lengthRatio = docLen / avgDocLen
	}

	denom := tf + params.K1*(1-params.B+params.B*lengthRatio)
	if denom <= 0 {
		return 0
	}
	return idf * (tf * (params.K1 + 1)) / denom
}

type BM25Stats interface {
	CorpusStats
	GetAverageDocLength() float64
}

// BM25Score sums BM25TermScore over the distinct query terms. A document that
// shares no term with the query scores exactly 0.
func BM25Score(queryTerms []string, docTokens []string, stats BM25Stats, params BM25Params) float64 {
	counts := make(map[string]int, len(docTokens))
	for _, token := range docTokens {
		counts[token]++
	}

	docsCount := stats.GetDocsCount()
	avgDocLen := stats.GetAverageDocLength()

	seen := make(map[string]struct{}, len(queryTerms))
	score := 0.0
	for _, term := range queryTerms {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}

		tf := counts[term]
		if tf == 0 {
			continue
		}
		score += BM25TermScore(float64(tf), stats.DocumentFrequency(term), docsCount,
			float64(len(docTokens)), avgDocLen, params)
	}
	return score
}

// RankBM25 scores every document of idx against query. Ties keep corpus order.
func RankBM25(idx CorpusIndex, query string, params BM25Params) []datastructure.ScoredDocument {
	return rankBM25Terms(idx, idx.Analyze(query), params)
}

func rankBM25Terms(idx CorpusIndex, queryTerms []string, params BM25Params) []datastructure.ScoredDocument {
	docs := idx.Documents()
	scored := make([]datastructure.ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		score := BM25Score(queryTerms, idx.DocTokens(doc.ID), idx, params)
		scored = append(scored, datastructure.NewScoredDocument(doc, score))
	}
	return rankScored(scored)
}
