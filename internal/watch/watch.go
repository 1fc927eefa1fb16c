// Package watch reloads the config file when it changes on disk and reports
// the new focus style.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// DefaultDelay coalesces the burst of events editors emit for one save.
const DefaultDelay = 100 * time.Millisecond

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("watcher closed")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets how long the file must be quiet before it is reloaded.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) { w.delay = d }
}

// WithLogger sets the watcher logger.
func WithLogger(l logr.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// WithLoader replaces config.Load.
func WithLoader(fn func(path string) (config.Config, error)) Option {
	return func(w *Watcher) { w.load = fn }
}

// OnStyle sets the callback for a successfully reloaded style.
func OnStyle(fn func(focus.Style)) Option {
	return func(w *Watcher) { w.onStyle = fn }
}

// OnError sets the callback for reload and watch errors.
func OnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher watches a single config file. The parent directory is watched so
// that editors which save by rename are seen.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	delay   time.Duration
	load    func(string) (config.Config, error)
	onStyle func(focus.Style)
	onError func(error)
	log     logr.Logger

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	started bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher for path. Call Start to begin delivering events.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w := &Watcher{
		path:  abs,
		delay: DefaultDelay,
		load:  config.Load,
		log:   logr.Discard(),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start runs the event loop until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.started {
		return nil
	}
	w.started = true
	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Close stops the loop and releases the fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.V(1).Info("config changed", "path", w.path, "op", ev.Op.String())
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := w.load(w.path)
	if err != nil {
		w.report(fmt.Errorf("reload %s: %w", w.path, err))
		return
	}
	w.log.V(1).Info("config reloaded", "path", w.path)
	if w.onStyle != nil {
		w.onStyle(cfg.Style)
	}
}

func (w *Watcher) report(err error) {
	w.log.Error(err, "config watch")
	if w.onError != nil {
		w.onError(err)
	}
}
