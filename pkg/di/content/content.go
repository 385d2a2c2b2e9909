package content_di

import (
	"context"

	"github.com/lintang-b-s/ir-lab/pkg/content"
	"github.com/lintang-b-s/ir-lab/pkg/di/config"

	"go.uber.org/zap"
)

// New returns the content loader. With WATCH_CONTENT the cache is dropped on
// every file change until ctx is done.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) *content.Loader {
	loader := content.NewLoader(cfg.ContentDir)

	if cfg.WatchContent {
		go func() {
			if err := loader.Watch(ctx, log); err != nil {
				log.Error("content watcher stopped", zap.Error(err))
			}
		}()
	}

	return loader
}
