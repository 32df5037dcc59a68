package filesystem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// DefaultDebounce groups bursts of editor writes into one change.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls OnChange after markdown files in a directory are created,
// written, removed or renamed. Bursts within the debounce window produce a
// single call.
type Watcher struct {
	root     string
	onChange func()
	debounce time.Duration

	fsw  *fsnotify.Watcher
	once sync.Once
	done chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for root. Call Start to begin watching.
func NewWatcher(root string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:     ResolvePath(root),
		onChange: onChange,
		debounce: debounce,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the directory until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fsw.Add(w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	logger.Debug("Watching knowledge base: %s", w.root)
	go w.loop(ctx)
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if isRelevant(event) {
				logger.Debug("knowledge base change: %s %s", event.Op, event.Name)
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("knowledge base watcher: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
		default:
			w.onChange()
		}
	})
}

// isRelevant filters out chmod events and non-markdown files.
func isRelevant(event fsnotify.Event) bool {
	if !IsMarkdown(event.Name) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
