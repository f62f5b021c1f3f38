package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ItemsWatcher reloads an items file whenever it changes on disk.
// Reloaded files are delivered on Updates; consumers poll it from their frame loop.
type ItemsWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *zap.Logger
	updates  chan *ItemsFile
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewItemsWatcher creates a watcher for path. Start must be called to begin watching.
func NewItemsWatcher(path string, log *zap.Logger) (*ItemsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &ItemsWatcher{
		watcher:  w,
		path:     filepath.Clean(path),
		debounce: 250 * time.Millisecond, // editors save in bursts
		log:      log.Named("items-watcher"),
		updates:  make(chan *ItemsFile, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Updates delivers the latest successfully reloaded items file
func (iw *ItemsWatcher) Updates() <-chan *ItemsFile {
	return iw.updates
}

// Start watches the directory holding the items file. It is non-blocking.
func (iw *ItemsWatcher) Start(ctx context.Context) error {
	iw.mu.Lock()
	if iw.running {
		iw.mu.Unlock()
		return nil
	}
	iw.running = true
	iw.mu.Unlock()

	// Watch the directory: editors often replace the file instead of writing it
	if err := iw.watcher.Add(filepath.Dir(iw.path)); err != nil {
		iw.mu.Lock()
		iw.running = false
		iw.mu.Unlock()
		return err
	}
	iw.log.Debug("watching", zap.String("path", iw.path))

	go iw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit
func (iw *ItemsWatcher) Stop() {
	iw.mu.Lock()
	if !iw.running {
		iw.mu.Unlock()
		_ = iw.watcher.Close()
		return
	}
	iw.running = false
	iw.mu.Unlock()

	close(iw.stopCh)
	<-iw.doneCh

	if err := iw.watcher.Close(); err != nil {
		iw.log.Warn("close watcher", zap.Error(err))
	}
}

func (iw *ItemsWatcher) run(ctx context.Context) {
	defer close(iw.doneCh)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-iw.stopCh:
			return
		case ev, ok := <-iw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != iw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(iw.debounce)
			} else {
				timer.Reset(iw.debounce)
			}
			timerCh = timer.C
		case err, ok := <-iw.watcher.Errors:
			if !ok {
				return
			}
			iw.log.Warn("watch error", zap.Error(err))
		case <-timerCh:
			timerCh = nil
			iw.reload()
		}
	}
}

func (iw *ItemsWatcher) reload() {
	f, err := LoadItems(os.DirFS(filepath.Dir(iw.path)), filepath.Base(iw.path))
	if err != nil {
		iw.log.Warn("reload items", zap.Error(err))
		return
	}

	// Keep only the newest file
	select {
	case <-iw.updates:
	default:
	}
	iw.updates <- f
	iw.log.Info("items reloaded", zap.Int("count", len(f.Items)))
}
