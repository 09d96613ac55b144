// Package watch re-runs a program whenever its source file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	DEBOUNCE = 250 * time.Millisecond // Quiet time after a change before re-running.
)

// RunFunc runs the program once. It must return soon after ctx is cancelled.
type RunFunc func(ctx context.Context)

// Watcher runs a RunFunc each time a file changes.
// Runs never overlap; a change cancels the run in progress.
type Watcher struct {
	Path     string        // File being watched.
	Debounce time.Duration // Quiet time before re-running.
	Logger   *slog.Logger  // nil for slog.Default().

	run     RunFunc
	fsw     *fsnotify.Watcher
	trigger chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu        sync.Mutex
	timer     *time.Timer
	runCancel context.CancelFunc
}

// NewWatcher creates a watcher of path.
func NewWatcher(path string, run RunFunc) (w *Watcher, err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}

	w = &Watcher{
		Path:     filepath.Clean(path),
		Debounce: DEBOUNCE,
		run:      run,
		fsw:      fsw,
		trigger:  make(chan struct{}, 1),
	}

	return
}

func (w *Watcher) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// Start watching. The directory holding Path is watched, so that editors
// replacing the file by rename are seen.
func (w *Watcher) Start(ctx context.Context) (err error) {
	err = w.fsw.Add(filepath.Dir(w.Path))
	if err != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(2)
	go w.loop(ctx)
	go w.runner(ctx)

	w.logger().Info("watching", "path", w.Path)
	return
}

// Trigger requests a run, as if the file had changed.
func (w *Watcher) Trigger() {
	w.mu.Lock()
	if w.runCancel != nil {
		w.runCancel()
	}
	w.mu.Unlock()

	select {
	case w.trigger <- struct{}{}:
	default:
		// A run is already pending.
	}
}

// Stop watching, cancelling any run in progress, and wait for it to end.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	if w.runCancel != nil {
		w.runCancel()
	}
	w.mu.Unlock()

	w.wg.Wait()
	w.fsw.Close()
}

func (w *Watcher) runner(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
		}

		runCtx, runCancel := context.WithCancel(ctx)
		w.mu.Lock()
		w.runCancel = runCancel
		w.mu.Unlock()

		w.run(runCtx)

		w.mu.Lock()
		w.runCancel = nil
		w.mu.Unlock()
		runCancel()
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger().Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.Path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Debounce, func() {
		w.logger().Info("changed", "path", w.Path)
		w.Trigger()
	})
}
