package content

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates cached content whenever a file under the assessment or
// topic directory changes. It blocks until ctx is done.
func (l *Loader) Watch(ctx context.Context, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	defer watcher.Close()

	for _, kind := range []string{ASSESSMENT_DIR, TOPIC_DIR} {
		dir := filepath.Join(l.dir, kind)
		if err := watcher.Add(dir); err != nil {
			log.Warn("content directory not watched", zap.String("dir", dir), zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			l.Invalidate(event.Name)
			log.Debug("content changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("content watcher error", zap.Error(err))
		}
	}
}
