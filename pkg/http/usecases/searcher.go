package usecases

import (
	"time"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/metrics"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"go.uber.org/zap"
)

type SearcherService struct {
	log      *zap.Logger
	searcher Searcher
}

func NewSearcherService(log *zap.Logger, searcher Searcher) *SearcherService {
	return &SearcherService{
		log:      log,
		searcher: searcher,
	}
}

func (s *SearcherService) Search(query string, k, offset int) (searcher.SearchResult, error) {
	start := time.Now()
	res, err := s.searcher.FreeFormQuery(query, k, offset)
	metrics.ObserveLab("search", start, err)
	if err == nil && len(res.Corrections) > 0 {
		s.log.Debug("query corrected", zap.String("query", query), zap.String("corrected", res.CorrectedQuery))
	}
	return res, err
}

func (s *SearcherService) BooleanSearch(query string) ([]datastructure.Document, error) {
	start := time.Now()
	docs, err := s.searcher.BooleanQuery(query)
	metrics.ObserveLab("boolean_search", start, err)
	return docs, err
}

func (s *SearcherService) Autocomplete(prefix string, k int) ([]string, error) {
	start := time.Now()
	terms, err := s.searcher.Autocomplete(prefix, k)
	metrics.ObserveLab("autocomplete", start, err)
	return terms, err
}
