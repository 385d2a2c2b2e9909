package searcher_di

import (
	"github.com/lintang-b-s/ir-lab/pkg/di/config"
	"github.com/lintang-b-s/ir-lab/pkg/http/usecases"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/kvdb"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
)

func New(cfg *config.Config, invertedIndex *index.InvertedIndex, db *kvdb.KVDB) (usecases.Searcher, error) {
	spellCorrector, err := searcher.NewSpellCorrector()
	if err != nil {
		return nil, err
	}

	err = spellCorrector.BuildFiniteStateTransducerSortedTerms(invertedIndex.GetSortedTerms(), invertedIndex.CollectionFrequency)
	if err != nil {
		return nil, err
	}

	return searcher.NewSearcher(invertedIndex, db, spellCorrector, cfg.Scoring, cfg.BM25), nil
}
