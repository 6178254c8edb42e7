package store

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// PlanWatcher watches the data directory for changes to the plan file and
// notifies after edits settle. Editors write in bursts; events are debounced
// before the callback fires.
type PlanWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	store       *Store
	onChange    func()
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	logger      *zap.Logger
}

// NewPlanWatcher creates a watcher for the store's plan file. onChange is
// invoked from the watcher goroutine once per settled burst of writes.
func NewPlanWatcher(store *Store, onChange func(), logger *zap.Logger) (*PlanWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PlanWatcher{
		watcher:     watcher,
		store:       store,
		onChange:    onChange,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logger,
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine.
func (w *PlanWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.store.dataDir); err != nil {
		// Directory may not exist until the first save.
		w.logger.Warn("initial watch failed", zap.String("dir", w.store.dataDir), zap.Error(err))
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *PlanWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("error closing watcher", zap.Error(err))
	}
}

func (w *PlanWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		case <-debounceTicker.C:
			w.fireSettled()
		}
	}
}

func (w *PlanWatcher) handleEvent(event fsnotify.Event) {
	if event.Name != w.store.PlanPath() {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("plan file event", zap.String("op", event.Op.String()))
	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *PlanWatcher) fireSettled() {
	w.mu.Lock()
	now := time.Now()
	fire := false
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			delete(w.debounceMap, path)
			fire = true
		}
	}
	w.mu.Unlock()

	if fire && w.onChange != nil {
		w.onChange()
	}
}
