//go:build wireinject

//go:generate wire
package di

import (
	"github.com/lintang-b-s/ir-lab/pkg/content"
	"github.com/lintang-b-s/ir-lab/pkg/di/config"
	content_di "github.com/lintang-b-s/ir-lab/pkg/di/content"
	shortcontext "github.com/lintang-b-s/ir-lab/pkg/di/context"
	index_di "github.com/lintang-b-s/ir-lab/pkg/di/index"
	journey_di "github.com/lintang-b-s/ir-lab/pkg/di/journey"
	kv_di "github.com/lintang-b-s/ir-lab/pkg/di/kv"
	logger_di "github.com/lintang-b-s/ir-lab/pkg/di/logger"
	searcher_di "github.com/lintang-b-s/ir-lab/pkg/di/searcher"
	searchHttp "github.com/lintang-b-s/ir-lab/pkg/http"
	"github.com/lintang-b-s/ir-lab/pkg/http/usecases"
	"github.com/lintang-b-s/ir-lab/pkg/learning"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	index_di.New,
	searcher_di.New,
	content_di.New,
	journey_di.New,
	wire.Bind(new(usecases.ProgressTracker), new(*learning.Tracker)),
	wire.Bind(new(usecases.ContentLoader), new(*content.Loader)),
)

var apiSet = wire.NewSet(
	defaultSet,
	NewLabService,
	NewSearcherService,
	NewJourneyService,
	NewContentService,
	NewAPIServer,
)

func InitializeAPIServer() (*searchHttp.Server, func(), error) {

	panic(wire.Build(apiSet))
}
