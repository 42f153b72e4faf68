package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"buildcfg/internal/domain"
)

const defaultReloadDebounce = 200 * time.Millisecond

// OptionsUpdate is delivered to watcher subscribers after a presets file
// change actually flipped at least one flag.
type OptionsUpdate struct {
	Resolution domain.Resolution
	Diff       domain.OptionsDiff
}

// Watcher re-resolves build options when the presets file changes and
// notifies subscribers of the diff. The environment is re-snapshotted on
// every pass; within a pass all flags see one snapshot.
type Watcher struct {
	logger      *zap.Logger
	resolver    *Resolver
	presetsPath string

	mu   sync.Mutex
	last domain.Resolution

	subsMu sync.Mutex
	subs   map[chan OptionsUpdate]struct{}

	watchOnce sync.Once
	watchCtx  context.Context
}

// NewWatcher constructs a watcher seeded with an initial resolution.
func NewWatcher(ctx context.Context, resolver *Resolver, presetsPath string, logger *zap.Logger) (*Watcher, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	initial, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		logger:      logger.Named("watcher"),
		resolver:    resolver,
		presetsPath: presetsPath,
		last:        initial,
		subs:        make(map[chan OptionsUpdate]struct{}),
		watchCtx:    ctx,
	}, nil
}

// Current returns the latest resolution.
func (w *Watcher) Current() domain.Resolution {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Watch subscribes to option updates. The subscription is dropped when
// ctx is canceled. The filesystem watcher starts on first use.
func (w *Watcher) Watch(ctx context.Context) (<-chan OptionsUpdate, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch := make(chan OptionsUpdate, 1)
	w.subsMu.Lock()
	w.subs[ch] = struct{}{}
	w.subsMu.Unlock()

	w.watchOnce.Do(func() {
		go w.runWatcher(w.watchCtx)
	})

	go func() {
		<-ctx.Done()
		w.subsMu.Lock()
		delete(w.subs, ch)
		w.subsMu.Unlock()
	}()

	return ch, nil
}

// Reload forces a re-resolution outside the filesystem watcher.
func (w *Watcher) Reload(ctx context.Context) error {
	return w.reload(ctx)
}

func (w *Watcher) reload(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	w.mu.Lock()
	prev := w.last
	w.mu.Unlock()

	next, err := w.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	diff := domain.DiffOptions(prev.Options, next.Options)
	if diff.IsEmpty() {
		return nil
	}

	w.mu.Lock()
	w.last = next
	w.mu.Unlock()

	w.logger.Info("build options changed", zap.Strings("flags", diff.Changed))
	w.broadcast(OptionsUpdate{Resolution: next, Diff: diff})
	return nil
}

func (w *Watcher) broadcast(update OptionsUpdate) {
	for _, ch := range w.copySubscribers() {
		select {
		case ch <- update:
		default:
		}
	}
}

func (w *Watcher) copySubscribers() []chan OptionsUpdate {
	w.subsMu.Lock()
	defer w.subsMu.Unlock()

	out := make([]chan OptionsUpdate, 0, len(w.subs))
	for ch := range w.subs {
		out = append(out, ch)
	}
	return out
}

func (w *Watcher) runWatcher(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("presets watcher failed", zap.Error(err))
		return
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	dir := filepath.Dir(w.presetsPath)
	if err := watcher.Add(dir); err != nil {
		w.logger.Warn("presets watcher add failed", zap.String("path", dir), zap.Error(err))
		return
	}

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-watcher.Errors:
			if err != nil {
				w.logger.Warn("presets watcher error", zap.Error(err))
			}
		case event := <-watcher.Events:
			if filepath.Base(event.Name) != filepath.Base(w.presetsPath) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(defaultReloadDebounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(defaultReloadDebounce)
		case <-timerChan(timer):
			timer = nil
			if err := w.reload(ctx); err != nil {
				w.logger.Warn("presets reload failed", zap.Error(err))
			}
		}
	}
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
