// Package loader fetches gallery images in the background. Results are handed back
// over a channel so the frame goroutine can apply them without locks.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// ErrClosed is returned for loads requested after Close.
var ErrClosed = errors.New("loader closed")

// Request identifies one image load. Generation lets the receiver drop results
// that belong to a previous item list.
type Request struct {
	Generation  uint64
	SourceIndex int
	Source      string
}

// Result is the outcome of a Request.
type Result struct {
	Request
	Image *image.NRGBA
	Err   error
}

// Options configures a Loader.
type Options struct {
	HTTPClient  *http.Client
	Assets      fs.FS // Relative paths are read from here when set
	Concurrency int
	Timeout     time.Duration // Per-load timeout, 0 for none
	Logger      *zap.Logger
}

// Loader runs image loads with bounded concurrency.
type Loader struct {
	client  *http.Client
	assets  fs.FS
	timeout time.Duration
	logger  *zap.Logger
	sem     *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex // Guards closed and wg.Add
	closed bool
	wg     sync.WaitGroup

	results chan Result
	pending atomic.Int64
}

// New creates a Loader. Close must be called to stop its goroutines.
func New(opts Options) *Loader {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		client:  opts.HTTPClient,
		assets:  opts.Assets,
		timeout: opts.Timeout,
		logger:  opts.Logger.Named("loader"),
		sem:     semaphore.NewWeighted(int64(opts.Concurrency)),
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan Result, 64),
	}
}

// Load starts loading req in the background.
func (l *Loader) Load(req Request) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}

	l.pending.Add(1)
	l.wg.Add(1)
	go l.run(req)
	return nil
}

func (l *Loader) run(req Request) {
	defer l.wg.Done()

	if err := l.sem.Acquire(l.ctx, 1); err != nil {
		return
	}
	img, err := l.fetch(l.ctx, req.Source)
	l.sem.Release(1)

	if l.ctx.Err() != nil {
		return
	}
	if err != nil {
		l.logger.Debug("load failed", zap.String("source", req.Source), zap.Error(err))
	}

	select {
	case l.results <- Result{Request: req, Image: img, Err: err}:
	case <-l.ctx.Done():
	}
}

// Drain hands every finished result to fn without blocking and returns how many it handled.
// It must be called from a single goroutine.
func (l *Loader) Drain(fn func(Result)) int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.pending.Add(-1)
			fn(r)
			n++
		default:
			return n
		}
	}
}

// Pending reports loads that were requested and not yet drained.
func (l *Loader) Pending() int {
	return int(l.pending.Load())
}

// Close cancels in-flight loads and waits for their goroutines. Undrained results are discarded.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()

	for {
		select {
		case <-l.results:
		default:
			l.pending.Store(0)
			return
		}
	}
}

func (l *Loader) fetch(ctx context.Context, source string) (*image.NRGBA, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return img, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	u, err := url.Parse(source)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return l.get(ctx, source)
		case "file":
			return os.Open(filepath.FromSlash(u.Path))
		}
	}

	name := strings.TrimPrefix(filepath.ToSlash(source), "./")
	if l.assets != nil && fs.ValidPath(name) {
		f, err := l.assets.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open asset %s: %w", name, err)
		}
	}
	return os.Open(source)
}

func (l *Loader) get(ctx context.Context, source string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %s", source, resp.Status)
	}
	return resp.Body, nil
}
