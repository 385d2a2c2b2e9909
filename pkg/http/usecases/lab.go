package usecases

import (
	"errors"
	"strings"
	"time"

	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/cbir"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/linkanalysis"
	"github.com/lintang-b-s/ir-lab/pkg/metrics"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"go.uber.org/zap"
)

const (
	OPERATOR_AND = "AND"
	OPERATOR_OR  = "OR"
)

var ErrUnknownOperator = errors.New("operator must be AND or OR")

// LabDefaults are the parameters used when a lab request leaves them out.
type LabDefaults struct {
	BM25               searcher.BM25Params
	Rocchio            searcher.RocchioParams
	PageRankDamping    float64
	PageRankIterations int
}

// LabData is the toy data the labs fall back to.
type LabData struct {
	Graph      datastructure.Graph
	Dictionary []string
	Palette    []datastructure.ImageItem
}

// LabService runs the lab computations. Every call is synchronous and only
// reads shared state.
type LabService struct {
	log      *zap.Logger
	idx      LabIndex
	data     LabData
	defaults LabDefaults
}

func NewLabService(log *zap.Logger, idx LabIndex, data LabData, defaults LabDefaults) *LabService {
	return &LabService{
		log:      log,
		idx:      idx,
		data:     data,
		defaults: defaults,
	}
}

func (s *LabService) Defaults() LabDefaults {
	return s.defaults
}

// LabDataset model info
// @Description the toy collections every lab runs on.
type LabDataset struct {
	Documents  []datastructure.Document  `json:"documents"`
	Graph      datastructure.Graph       `json:"graph"`
	Dictionary []string                  `json:"dictionary"`
	Palette    []datastructure.ImageItem `json:"palette"`
}

func (s *LabService) Dataset() LabDataset {
	return LabDataset{
		Documents:  s.idx.Documents(),
		Graph:      s.data.Graph,
		Dictionary: s.data.Dictionary,
		Palette:    s.data.Palette,
	}
}

func (s *LabService) Preprocess(text, language string) (analyzer.PreprocessTrace, error) {
	start := time.Now()
	a, err := analyzer.NewAnalyzer(language)
	if err != nil {
		err = pkg.WrapErrorf(err, pkg.ErrBadParamInput, "preprocess")
		metrics.ObserveLab("preprocess", start, err)
		return analyzer.PreprocessTrace{}, err
	}
	trace := a.Steps(text)
	metrics.ObserveLab("preprocess", start, nil)
	return trace, nil
}

// BooleanResult model info
// @Description documents matching a boolean query.
type BooleanResult struct {
	Terms      []string                 `json:"terms,omitempty"`
	Operator   string                   `json:"operator,omitempty"`
	Expression string                   `json:"expression,omitempty"`
	DocIDs     []int                    `json:"doc_ids"`
	Docs       []datastructure.Document `json:"docs"`
}

// Boolean evaluates either an expression (AND, OR, NOT, parentheses) or a flat
// term list joined by operator. Terms are normalized like index terms.
func (s *LabService) Boolean(terms []string, operator, expression string) (BooleanResult, error) {
	start := time.Now()
	res, err := s.boolean(terms, operator, expression)
	metrics.ObserveLab("boolean", start, err)
	return res, err
}

func (s *LabService) boolean(terms []string, operator, expression string) (BooleanResult, error) {
	if strings.TrimSpace(expression) != "" {
		ids, err := s.idx.BooleanQuery(expression)
		if err != nil {
			return BooleanResult{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "boolean expression")
		}
		return BooleanResult{Expression: expression, DocIDs: ids, Docs: s.docsByID(ids)}, nil
	}

	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := s.idx.NormalizeTerm(term); t != "" {
			normalized = append(normalized, t)
		}
	}

	var ids []int
	switch strings.ToUpper(strings.TrimSpace(operator)) {
	case "", OPERATOR_AND:
		operator = OPERATOR_AND
		ids = index.AndQuery(s.idx.PostingsByTerm(), normalized)
	case OPERATOR_OR:
		operator = OPERATOR_OR
		ids = index.OrQuery(s.idx.PostingsByTerm(), normalized)
	default:
		return BooleanResult{}, pkg.WrapErrorf(ErrUnknownOperator, pkg.ErrBadParamInput, "operator %q", operator)
	}

	return BooleanResult{Terms: normalized, Operator: operator, DocIDs: ids, Docs: s.docsByID(ids)}, nil
}

func (s *LabService) docsByID(ids []int) []datastructure.Document {
	byID := make(map[int]datastructure.Document)
	for _, doc := range s.idx.Documents() {
		byID[doc.ID] = doc
	}
	docs := make([]datastructure.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// RankingResult model info
// @Description every corpus document scored against the analyzed query.
type RankingResult struct {
	Query string                         `json:"query"`
	Terms []string                       `json:"terms"`
	Docs  []datastructure.ScoredDocument `json:"docs"`
}

func (s *LabService) VSM(query string) RankingResult {
	start := time.Now()
	res := RankingResult{
		Query: query,
		Terms: s.idx.Analyze(query),
		Docs:  searcher.RankVSM(s.idx, query),
	}
	metrics.ObserveLab("vsm", start, nil)
	return res
}

func (s *LabService) BM25(query string, params searcher.BM25Params) RankingResult {
	start := time.Now()
	res := RankingResult{
		Query: query,
		Terms: s.idx.Analyze(query),
		Docs:  searcher.RankBM25(s.idx, query, params),
	}
	metrics.ObserveLab("bm25", start, nil)
	return res
}

// StructuredResult model info
// @Description parsed field constraints and the documents satisfying all of them.
type StructuredResult struct {
	Query       string                         `json:"query"`
	Constraints []searcher.FieldConstraint     `json:"constraints"`
	Docs        []datastructure.ScoredDocument `json:"docs"`
}

// Structured ranks the documents satisfying every field:term constraint. A nil
// weights table uses the default field weights.
func (s *LabService) Structured(query string, weights searcher.FieldWeights) StructuredResult {
	start := time.Now()
	if len(weights) == 0 {
		weights = searcher.DefaultFieldWeights()
	}
	res := StructuredResult{
		Query:       query,
		Constraints: searcher.ParseFieldQuery(query),
		Docs:        searcher.RankStructured(s.idx.Documents(), query, weights),
	}
	metrics.ObserveLab("structured", start, nil)
	return res
}

// RocchioResult model info
// @Description the query vector after feedback and the re-ranked corpus.
type RocchioResult struct {
	Query         string                         `json:"query"`
	ModifiedQuery searcher.Vector                `json:"modified_query"`
	Docs          []datastructure.ScoredDocument `json:"docs"`
}

func (s *LabService) Rocchio(query string, relevant, nonRelevant []int, params searcher.RocchioParams) (RocchioResult, error) {
	start := time.Now()
	for _, id := range append(append([]int{}, relevant...), nonRelevant...) {
		if !s.hasDoc(id) {
			err := pkg.WrapErrorf(pkg.ErrNotFound, pkg.ErrBadParamInput, "document %d", id)
			metrics.ObserveLab("rocchio", start, err)
			return RocchioResult{}, err
		}
	}
	modified, docs := searcher.RocchioFeedback(s.idx, query, relevant, nonRelevant, params)
	metrics.ObserveLab("rocchio", start, nil)
	return RocchioResult{Query: query, ModifiedQuery: modified, Docs: docs}, nil
}

func (s *LabService) hasDoc(id int) bool {
	for _, doc := range s.idx.Documents() {
		if doc.ID == id {
			return true
		}
	}
	return false
}

// PageRank runs the link analysis lab. Nil arguments fall back to the lab graph
// and the configured damping and iteration count.
func (s *LabService) PageRank(graph *datastructure.Graph, damping *float64, iterations *int) (linkanalysis.PageRankResult, error) {
	start := time.Now()
	g := s.data.Graph
	if graph != nil && len(graph.Nodes) > 0 {
		g = *graph
	}
	d := s.defaults.PageRankDamping
	if damping != nil {
		d = *damping
	}
	it := s.defaults.PageRankIterations
	if iterations != nil {
		it = *iterations
	}

	res, err := linkanalysis.PageRank(g, d, it)
	if err != nil {
		err = pkg.WrapErrorf(err, pkg.ErrBadParamInput, "pagerank")
	}
	metrics.ObserveLab("pagerank", start, err)
	return res, err
}

// SpellResult model info
// @Description suggestions for a possibly misspelled word.
type SpellResult struct {
	Word        string                `json:"word"`
	Suggestions []searcher.Suggestion `json:"suggestions"`
}

// Spell suggests dictionary words for word. An empty dictionary uses the lab
// dictionary.
func (s *LabService) Spell(word string, dictionary []string) SpellResult {
	start := time.Now()
	if len(dictionary) == 0 {
		dictionary = s.data.Dictionary
	}
	word = strings.ToLower(strings.TrimSpace(word))
	res := SpellResult{Word: word, Suggestions: searcher.Suggest(word, dictionary)}
	metrics.ObserveLab("spell", start, nil)
	return res
}

// Color ranks items by similarity to query. Empty items uses the lab palette.
func (s *LabService) Color(query datastructure.RGB, items []datastructure.ImageItem) []datastructure.ScoredImage {
	start := time.Now()
	if len(items) == 0 {
		items = s.data.Palette
	}
	res := cbir.RankByColor(query, items)
	metrics.ObserveLab("color", start, nil)
	return res
}
