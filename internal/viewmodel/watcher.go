package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"smokebreak/internal/domain/repository"
)

// watcher owns a view-model's lifetime and its change feed subscriptions.
type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	feed   repository.ChangeFeed
	logger *slog.Logger
	wg     sync.WaitGroup
}

func newWatcher(ctx context.Context, feed repository.ChangeFeed, logger *slog.Logger) *watcher {
	ctx, cancel := context.WithCancel(ctx)

	return &watcher{
		ctx:    ctx,
		cancel: cancel,
		feed:   feed,
		logger: logger,
	}
}

// watch calls reload after every write to one of tables until the view-model is closed.
func (w *watcher) watch(reload func(ctx context.Context), tables ...string) {
	events, unsubscribe := w.feed.Subscribe(tables...)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer unsubscribe()

		for {
			select {
			case <-w.ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				reload(w.ctx)
			}
		}
	}()
}

// Close stops reloading and waits for in-flight reloads to finish.
func (w *watcher) Close() {
	w.cancel()
	w.wg.Wait()
}
