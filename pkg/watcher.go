package pkg

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dzjyyds666/tomlkit/parse/toml"
)

// Watcher watches a single TOML file and re-parses it on change, debouncing
// bursts of filesystem events into a single reload. Grounded on
// mercator-hq-jupiter's pkg/policy/manager/watcher.go FileWatcher/Debouncer
// pair, narrowed from "watch a directory of policy files" to "watch one
// TOML file and hand the caller a fresh root table or parse error".
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	stopCh chan struct{}
}

// NewWatcher opens an fsnotify watch on path's parent directory — fsnotify
// loses track of a file watched directly across an editor's
// atomic-rename-on-save, but a directory watch survives it.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("toml: watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("toml: watcher: watch %q: %w", dir, err)
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		watcher:  fw,
		stopCh:   make(chan struct{}),
	}, nil
}

// Run blocks, debouncing write/create/rename events on the watched path and
// invoking onReload with the result of re-parsing it after each quiet
// period. It returns when ctx is done or Close is called. Each reload
// produces a fresh, independently-owned root table, so onReload's caller
// never has to synchronize on a tree shared with a prior callback.
func (w *Watcher) Run(ctx context.Context, onReload func(*toml.Table, *toml.ParseError)) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("toml: watcher: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || abs != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(onReload)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

func (w *Watcher) schedule(onReload func(*toml.Table, *toml.ParseError)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		result := toml.ParseFile(w.path)
		onReload(result.Table(), result.Error())
	})
}

// Close stops the underlying fsnotify watcher and cancels any pending
// debounced reload.
func (w *Watcher) Close() error {
	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
