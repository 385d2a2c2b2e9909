package index_di

import (
	"context"
	"errors"

	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/dataset"
	"github.com/lintang-b-s/ir-lab/pkg/di/config"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/kvdb"

	"go.uber.org/zap"
)

// New loads the index snapshot. Without one it indexes the stored documents,
// seeding the store with the lab corpus when it is empty, and writes a snapshot.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, db *kvdb.KVDB) (*index.InvertedIndex, error) {
	textAnalyzer, err := analyzer.NewAnalyzer(cfg.AnalyzerLanguage)
	if err != nil {
		return nil, err
	}

	idx, err := index.LoadInvertedIndex(cfg.IndexDir, textAnalyzer, cfg.IndexWorkers)
	if err == nil {
		log.Info("index snapshot loaded", zap.String("dir", cfg.IndexDir), zap.Int("docs", idx.GetDocsCount()))
		return idx, nil
	}
	if !errors.Is(err, index.ErrSnapshotNotFound) {
		return nil, err
	}

	docs, err := db.GetAllDocs()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		docs = dataset.Documents()
		if err := db.SaveDocs(docs); err != nil {
			return nil, err
		}
		log.Info("document store seeded with the lab corpus", zap.Int("docs", len(docs)))
	}

	idx = index.NewInvertedIndex(textAnalyzer, cfg.IndexWorkers)
	if err := idx.Build(ctx, docs); err != nil {
		return nil, err
	}

	if err := idx.Save(cfg.IndexDir); err != nil {
		log.Warn("failed to write index snapshot", zap.String("dir", cfg.IndexDir), zap.Error(err))
	}
	log.Info("index built", zap.Int("docs", idx.GetDocsCount()), zap.Int("terms", idx.GetTermIDMap().Len()))
	return idx, nil
}
