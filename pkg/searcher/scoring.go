package searcher

import (
	"math"
	"sort"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// Vector is a sparse term -> weight vector.
type Vector map[string]float64

func (v Vector) Dot(other Vector) float64 {
	if len(other) < len(v) {
		v, other = other, v
	}
	dot := 0.0
	for term, w := range v {
		dot += w * other[term]
	}
	return dot
}

func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// TermFrequency is count(term in doc) / |doc|. An empty doc has tf 0.
func TermFrequency(term string, docTokens []string) float64 {
	if len(docTokens) == 0 {
		return 0
	}
	count := 0
	for _, token := range docTokens {
		if token == term {
			count++
		}
	}
	return float64(count) / float64(len(docTokens))
}

// InverseDocumentFrequency is ln(N/df). df = 0 (term in no document) gives 0.
func InverseDocumentFrequency(docsCount, df int) float64 {
	if df <= 0 || docsCount <= 0 {
		return 0
	}
	return math.Log(float64(docsCount) / float64(df))
}

// TFIDFVector weights every distinct token of tokens by tf * idf.
func TFIDFVector(tokens []string, stats CorpusStats) Vector {
	vec := make(Vector)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	docsCount := stats.GetDocsCount()
	for term, count := range counts {
		tf := float64(count) / float64(len(tokens))
		vec[term] = tf * InverseDocumentFrequency(docsCount, stats.DocumentFrequency(term))
	}
	return vec
}

// Cosine is q.d / (|q| |d|), 0 when either vector has no magnitude. The result
// is clamped to [0,1].
func Cosine(q, d Vector) float64 {
	qNorm, dNorm := q.Magnitude(), d.Magnitude()
	if qNorm == 0 || dNorm == 0 {
		return 0
	}
	cos := q.Dot(d) / (qNorm * dNorm)
	return math.Max(0, math.Min(1, cos))
}

// RankVSM scores every document of idx against query with tf-idf cosine. Ties
// keep corpus order.
func RankVSM(idx CorpusIndex, query string) []datastructure.ScoredDocument {
	return rankVSMTerms(idx, idx.Analyze(query))
}

func rankVSMTerms(idx CorpusIndex, queryTerms []string) []datastructure.ScoredDocument {
	queryVec := TFIDFVector(queryTerms, idx)

	docs := idx.Documents()
	scored := make([]datastructure.ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		docVec := TFIDFVector(idx.DocTokens(doc.ID), idx)
		scored = append(scored, datastructure.NewScoredDocument(doc, Cosine(queryVec, docVec)))
	}
	return rankScored(scored)
}

// rankScored sorts descending by score, stable, and assigns 1-based ranks.
func rankScored(scored []datastructure.ScoredDocument) []datastructure.ScoredDocument {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}
