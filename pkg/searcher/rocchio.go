package searcher

import "github.com/lintang-b-s/ir-lab/pkg/datastructure"

// RocchioParams model info
// @Description weights of the original query, the relevant centroid and the non relevant centroid.
type RocchioParams struct {
	Alpha float64 `json:"alpha" validate:"gte=0"`
	Beta  float64 `json:"beta" validate:"gte=0"`
	Gamma float64 `json:"gamma" validate:"gte=0"`
}

var DefaultRocchioParams = RocchioParams{Alpha: 1.0, Beta: 0.75, Gamma: 0.15}

// Centroid is the mean of vectors. No vectors gives the zero vector.
func Centroid(vectors []Vector) Vector {
	centroid := make(Vector)
	if len(vectors) == 0 {
		return centroid
	}
	for _, vec := range vectors {
		for term, w := range vec {
			centroid[term] += w
		}
	}
	n := float64(len(vectors))
	for term := range centroid {
		centroid[term] /= n
	}
	return centroid
}

// Rocchio moves query towards the relevant centroid and away from the non
// relevant one: alpha*q + beta*C(R) - gamma*C(NR). Terms whose weight drops to
// zero or below are removed.
func Rocchio(query Vector, relevant, nonRelevant []Vector, params RocchioParams) Vector {
	modified := make(Vector, len(query))
	for term, w := range query {
		modified[term] += params.Alpha * w
	}
	for term, w := range Centroid(relevant) {
		modified[term] += params.Beta * w
	}
	for term, w := range Centroid(nonRelevant) {
		modified[term] -= params.Gamma * w
	}

	for term, w := range modified {
		if w <= 0 {
			delete(modified, term)
		}
	}
	return modified
}

// RocchioFeedback runs one round of relevance feedback over idx: the query and
// the judged documents are turned into tf-idf vectors, the query vector is
// moved, and every document is ranked by cosine against the moved query.
func RocchioFeedback(idx CorpusIndex, query string, relevantIDs, nonRelevantIDs []int,
	params RocchioParams) (Vector, []datastructure.ScoredDocument) {
	queryVec := TFIDFVector(idx.Analyze(query), idx)

	toVectors := func(ids []int) []Vector {
		vecs := make([]Vector, 0, len(ids))
		for _, id := range ids {
			vecs = append(vecs, TFIDFVector(idx.DocTokens(id), idx))
		}
		return vecs
	}

	modified := Rocchio(queryVec, toVectors(relevantIDs), toVectors(nonRelevantIDs), params)

	docs := idx.Documents()
	scored := make([]datastructure.ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		docVec := TFIDFVector(idx.DocTokens(doc.ID), idx)
		scored = append(scored, datastructure.NewScoredDocument(doc, Cosine(modified, docVec)))
	}
	return modified, rankScored(scored)
}
