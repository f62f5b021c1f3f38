// Package snapshot renders a gallery headlessly and writes the frames as images.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/gallery"
	"github.com/orbit-social/orbit/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoItems is returned when there is nothing to render
var ErrNoItems = errors.New("no gallery items")

// Config describes one snapshot run
type Config struct {
	Items  *cfg.ItemsFile
	Assets fs.FS // Resolves relative image paths

	Width  int
	Height int
	Frames int      // Frames to run after the wheel input
	Wheel  int      // Wheel events to apply, negative scrolls back
	Bend   *float64 // Overrides the items file when set

	// Out is the image file to write, or the directory for a sequence
	Out      string
	Sequence bool

	Background  color.Color
	LoadTimeout time.Duration
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Run renders the gallery and returns the paths it wrote.
func Run(ctx context.Context, c Config) ([]string, error) {
	if c.Items == nil || len(c.Items.Items) == 0 {
		return nil, ErrNoItems
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if c.Background == nil {
		c.Background = color.Black
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = cfg.Media.LoadTimeout
	}

	frames, _, err := renderFrames(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	paths := outputPaths(c.Out, c.Sequence, len(frames))
	if c.Sequence {
		if err := os.MkdirAll(c.Out, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, frame := range frames {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return writeImage(paths[i], frame)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Info("snapshot written", zap.Int("frames", len(frames)), zap.String("out", c.Out))
	return paths, nil
}

// frameClock advances one tick per rendered frame, so debounced snaps fire after the
// same number of frames on every machine.
type frameClock struct {
	now  time.Time
	tick time.Duration
}

func newFrameClock(tps int) *frameClock {
	return &frameClock{
		now:  time.Unix(0, 0),
		tick: time.Second / time.Duration(max(tps, 1)),
	}
}

func (c *frameClock) Now() time.Time { return c.now }
func (c *frameClock) Advance()       { c.now = c.now.Add(c.tick) }

// settled is the scroll state after the last frame
type settled struct {
	Target float64
	Slot   float64
}

// renderFrames runs the gallery headlessly and returns the captured frames along with
// the final scroll state.
func renderFrames(ctx context.Context, c Config, logger *zap.Logger) ([]*image.RGBA, settled, error) {
	clock := newFrameClock(cfg.C.TPS)

	opts := gallery.DefaultOptions().WithItemsFile(c.Items)
	if c.Bend != nil {
		opts.Bend = *c.Bend
	}
	opts.Width, opts.Height = c.Width, c.Height
	opts.Assets = c.Assets
	opts.HTTPClient = c.HTTPClient
	opts.Logger = logger
	opts.Now = clock.Now

	surface := render.NewRasterSurface(max(c.Width, 1), max(c.Height, 1), c.Background)
	g, err := gallery.New(ctx, opts, render.Static(surface))
	if err != nil {
		return nil, settled{}, err
	}
	defer g.Close()

	loadCtx, cancel := context.WithTimeout(ctx, c.LoadTimeout)
	err = g.AwaitTextures(loadCtx)
	cancel()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("images still loading, rendering placeholders", zap.Int("pending", g.Pending()))
	case err != nil:
		return nil, settled{}, err
	}

	for i := 0; i < abs(c.Wheel); i++ {
		if c.Wheel > 0 {
			g.Wheel(1)
		} else {
			g.Wheel(-1)
		}
	}

	frames := make([]*image.RGBA, 0, 1)
	for i := 0; i < max(c.Frames, 1); i++ {
		if err := ctx.Err(); err != nil {
			return nil, settled{}, err
		}
		g.Update()
		clock.Advance()
		if c.Sequence {
			frames = append(frames, surface.Snapshot())
		}
	}
	if !c.Sequence {
		frames = append(frames, surface.Snapshot())
	}

	_, target := g.Scroll()
	return frames, settled{Target: target, Slot: g.SlotWidth()}, nil
}

func outputPaths(out string, sequence bool, n int) []string {
	if !sequence {
		return []string{out}
	}
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(out, fmt.Sprintf("frame_%04d.webp", i))
	}
	return paths
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f, path, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// encode picks the format from the file extension, WebP unless it is .png
func encode(w io.Writer, path string, img image.Image) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return png.Encode(w, img)
	}
	return nativewebp.Encode(w, img, nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
