// Package watch reloads a local dataset file when it changes on disk.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"vizterm/internal/logging"
)

var (
	ErrFileRemoved    = errors.New("watched file was removed")
	ErrAlreadyStarted = errors.New("watcher already started")
)

// ChangedMsg is sent into the bubbletea loop after a debounced change.
type ChangedMsg struct {
	Path string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the debounce duration.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) { w.debounceDuration = d }
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// WithLogger sets the logger.
func WithLogger(log logging.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// Watcher monitors one file through its parent directory so atomic
// rename-over saves are seen.
type Watcher struct {
	path             string
	debounceDuration time.Duration
	onError          func(error)
	log              logging.Logger

	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	cancel    context.CancelFunc
	started   bool
	mu        sync.Mutex
	changeCh  chan struct{}
	done      chan struct{}
}

// New creates a watcher for path. It does not start watching.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:             abs,
		debounceDuration: DefaultDebounceDuration,
		onError:          func(error) {},
		log:              logging.NewNop(),
		changeCh:         make(chan struct{}, 1),
		done:             make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounceDuration)
	return w, nil
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string { return w.path }

// Start begins watching.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return ErrAlreadyStarted
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.fsw, w.cancel, w.started = fsw, cancel, true
	select {
	case <-w.done:
		w.done = make(chan struct{})
	default:
	}
	go w.loop(ctx, fsw.Events, fsw.Errors)
	w.log.Info("watching dataset", logging.String("path", w.path))
	return nil
}

// Stop stops watching. Pending notifications are dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.cancel()
	w.fsw.Close()
	w.fsw = nil
	w.debouncer.Cancel()
	w.started = false
	close(w.done)
}

// Changed receives once per debounced change.
func (w *Watcher) Changed() <-chan struct{} { return w.changeCh }

// Cmd waits for the next change and reports it to the program. It
// returns nil once the watcher is stopped.
func (w *Watcher) Cmd() tea.Cmd {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()
	return func() tea.Msg {
		select {
		case <-w.changeCh:
			return ChangedMsg{Path: w.path}
		case <-done:
			return nil
		}
	}
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			switch {
			case ev.Op&fsnotify.Remove != 0:
				w.onError(ErrFileRemoved)
			case ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
				w.debouncer.Trigger(w.notify)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.log.Warn("watch error", logging.Err(err))
			w.onError(err)
		}
	}
}

func (w *Watcher) notify() {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if !started {
		return
	}
	select {
	case w.changeCh <- struct{}{}:
	default:
	}
}
