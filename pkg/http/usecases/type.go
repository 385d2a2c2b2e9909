package usecases

import (
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/learning"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
)

type Searcher interface {
	FreeFormQuery(query string, k, offset int) (searcher.SearchResult, error)
	BooleanQuery(query string) ([]datastructure.Document, error)
	Autocomplete(prefix string, k int) ([]string, error)
}

// LabIndex is the corpus index the labs compute on.
type LabIndex interface {
	searcher.CorpusIndex
	PostingsByTerm() map[string][]int
	NormalizeTerm(term string) string
	BooleanQuery(query string) ([]int, error)
}

type ProgressTracker interface {
	Progress(learnerID string) (learning.Progress, error)
	Complete(learnerID, nodeID string) (learning.Progress, error)
	MarkRead(learnerID, topicID string, read bool) error
	IsRead(learnerID, topicID string) (bool, error)
	Journey() *learning.Journey
}

type ContentLoader interface {
	LoadAssessment(unitID string) (datastructure.Assessment, error)
	LoadTopic(topicID string) (datastructure.Topic, error)
	ListUnits() ([]string, error)
}
