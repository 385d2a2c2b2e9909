package controllers

import (
	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/content"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/http/usecases"
	"github.com/lintang-b-s/ir-lab/pkg/learning"
	"github.com/lintang-b-s/ir-lab/pkg/linkanalysis"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
)

type LabService interface {
	Defaults() usecases.LabDefaults
	Dataset() usecases.LabDataset
	Preprocess(text, language string) (analyzer.PreprocessTrace, error)
	Boolean(terms []string, operator, expression string) (usecases.BooleanResult, error)
	VSM(query string) usecases.RankingResult
	BM25(query string, params searcher.BM25Params) usecases.RankingResult
	Structured(query string, weights searcher.FieldWeights) usecases.StructuredResult
	Rocchio(query string, relevant, nonRelevant []int, params searcher.RocchioParams) (usecases.RocchioResult, error)
	PageRank(graph *datastructure.Graph, damping *float64, iterations *int) (linkanalysis.PageRankResult, error)
	Spell(word string, dictionary []string) usecases.SpellResult
	Color(query datastructure.RGB, items []datastructure.ImageItem) []datastructure.ScoredImage
}

type SearchService interface {
	Search(query string, k, offset int) (searcher.SearchResult, error)
	BooleanSearch(query string) ([]datastructure.Document, error)
	Autocomplete(prefix string, k int) ([]string, error)
}

type JourneyService interface {
	NewLearner() string
	Progress(learnerID string) (learning.Progress, error)
	Complete(learnerID, nodeID string) (learning.Progress, error)
	MarkRead(learnerID, topicID string, read bool) error
	IsRead(learnerID, topicID string) (bool, error)
}

type ContentService interface {
	Assessment(unitID string) (datastructure.Assessment, error)
	Grade(unitID string, answers map[string]int) (content.GradeResult, error)
	Topic(topicID string) (datastructure.Topic, error)
	Units() ([]string, error)
}
