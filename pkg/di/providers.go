package di

import (
	"context"

	"github.com/lintang-b-s/ir-lab/pkg/dataset"
	"github.com/lintang-b-s/ir-lab/pkg/di/config"
	searchHttp "github.com/lintang-b-s/ir-lab/pkg/http"
	"github.com/lintang-b-s/ir-lab/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/ir-lab/pkg/http/usecases"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"

	"go.uber.org/zap"
)

func NewLabService(log *zap.Logger, idx *index.InvertedIndex, cfg *config.Config) controllers.LabService {
	return usecases.NewLabService(log, idx,
		usecases.LabData{
			Graph:      dataset.LinkGraph(),
			Dictionary: dataset.Dictionary(),
			Palette:    dataset.Palette(),
		},
		usecases.LabDefaults{
			BM25:               cfg.BM25,
			Rocchio:            searcher.DefaultRocchioParams,
			PageRankDamping:    cfg.PageRankDamping,
			PageRankIterations: cfg.PageRankIterations,
		})
}

func NewSearcherService(log *zap.Logger, searcher usecases.Searcher) controllers.SearchService {
	return usecases.NewSearcherService(log, searcher)
}

func NewJourneyService(log *zap.Logger, tracker usecases.ProgressTracker) controllers.JourneyService {
	return usecases.NewJourneyService(log, tracker)
}

func NewContentService(log *zap.Logger, loader usecases.ContentLoader) controllers.ContentService {
	return usecases.NewContentService(log, loader)
}

func NewAPIServer(ctx context.Context, log *zap.Logger,
	labService controllers.LabService,
	searchService controllers.SearchService,
	journeyService controllers.JourneyService,
	contentService controllers.ContentService,
) (*searchHttp.Server, error) {
	api := searchHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, labService, searchService, journeyService, contentService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
