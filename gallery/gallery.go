// Package gallery is a looping, bent carousel of image cards. A Gallery owns one
// ECS world and is driven entirely from the host's frame goroutine.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/loader"
	"github.com/orbit-social/orbit/render"
	"github.com/orbit-social/orbit/systems"
	"github.com/orbit-social/orbit/systems/factory"
	"github.com/orbit-social/orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

// ErrClosed is returned by operations on a closed gallery.
var ErrClosed = errors.New("gallery closed")

// awaitPoll is how often AwaitTextures drains the loader
const awaitPoll = 5 * time.Millisecond

// Gallery is one carousel instance.
type Gallery struct {
	id     uuid.UUID
	opts   Options
	logger *zap.Logger

	ecs     *ecs.ECS
	entry   *donburi.Entry
	surface render.Surface
	loader  *loader.Loader
	frame   render.Frame

	closeOnce sync.Once
	closed    bool
}

// New builds a gallery and waits for provider to deliver its surface. When the
// surface is unavailable everything already created is torn down and the returned
// error wraps render.ErrSurfaceUnavailable.
func New(ctx context.Context, opts Options, provider render.Provider) (*Gallery, error) {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("gallery").With(zap.String("id", id.String()))
	opts = opts.normalize(logger)

	g := &Gallery{
		id:     id,
		opts:   opts,
		logger: logger,
		ecs:    ecs.NewECS(donburi.NewWorld()),
	}
	g.loader = loader.New(loader.Options{
		HTTPClient:  opts.HTTPClient,
		Assets:      opts.Assets,
		Concurrency: opts.LoadConcurrency,
		Timeout:     cfg.Media.LoadTimeout,
		Logger:      logger,
	})

	if provider == nil {
		provider = render.Static(nil)
	}
	surface, err := provider(ctx)
	if err != nil || surface == nil {
		g.teardown()
		switch {
		case err == nil:
			err = render.ErrSurfaceUnavailable
		case !errors.Is(err, render.ErrSurfaceUnavailable):
			err = fmt.Errorf("%w: %v", render.ErrSurfaceUnavailable, err)
		}
		return nil, fmt.Errorf("create gallery: %w", err)
	}
	g.surface = surface

	g.ecs.AddSystem(systems.UpdateScroll)
	g.ecs.AddSystem(systems.UpdateMedia)
	g.ecs.AddSystem(systems.UpdateHover)
	g.ecs.AddSystem(systems.UpdateTextures)

	g.entry = factory.CreateGallery(g.ecs, components.GalleryData{
		Items:            slices.Clone(opts.Items),
		Bend:             opts.Bend,
		TextColor:        opts.TextColor,
		BorderRadius:     opts.BorderRadius,
		ScrollSpeed:      opts.ScrollSpeed,
		PlaceholderColor: opts.PlaceholderColor,
		Generation:       1,
		Now:              opts.Now,
	}, opts.ScrollEase)

	g.buildMedia()
	g.Resize(opts.Width, opts.Height)

	logger.Debug("gallery created", zap.Int("items", len(opts.Items)))
	return g, nil
}

// ID identifies the instance in logs.
func (g *Gallery) ID() uuid.UUID {
	return g.id
}

// Wheel applies one wheel event. Only the sign of deltaY matters.
func (g *Gallery) Wheel(deltaY float64) {
	if g.closed {
		return
	}
	systems.ApplyWheel(g.ecs, deltaY)
}

// PointerDown starts a press at pixel x.
func (g *Gallery) PointerDown(x float64) {
	if g.closed {
		return
	}
	systems.BeginDrag(g.ecs, x)
}

// PointerMove moves the pointer. It drags while a press is held and hovers otherwise.
func (g *Gallery) PointerMove(x, y float64) {
	if g.closed {
		return
	}
	systems.MovePointer(g.ecs, x, y)
	systems.ContinueDrag(g.ecs, x)
}

// PointerUp ends the press and schedules a snap.
func (g *Gallery) PointerUp() {
	if g.closed {
		return
	}
	systems.EndDrag(g.ecs)
}

// Click selects the centered item unless the last press was a drag.
func (g *Gallery) Click() {
	if g.closed {
		return
	}
	if index, ok := systems.ResolveClick(g.ecs); ok {
		g.fireClick(index)
	}
}

// Select selects the centered item regardless of pointer state.
func (g *Gallery) Select() {
	if g.closed {
		return
	}
	if index, ok := systems.CenteredItem(g.ecs); ok {
		g.fireClick(index)
	}
}

// Step scrolls by delta whole items, positive toward later items.
func (g *Gallery) Step(delta int) {
	if g.closed {
		return
	}
	systems.Step(g.ecs, delta)
}

// Resize sets the surface size in pixels. Non-positive sizes clamp to one pixel.
func (g *Gallery) Resize(width, height int) {
	if g.closed {
		return
	}
	width, height = max(width, 1), max(height, 1)
	systems.Resize(g.ecs, width, height)
	g.surface.Resize(width, height)

	if !systems.WrapCovers(g.ecs) {
		g.logger.Warn("gallery too short for the surface width, cards may leave gaps",
			zap.Int("width", width), zap.Int("items", len(components.Gallery.Get(g.entry).Items)))
	}
}

// Update advances the gallery by one frame and renders it.
func (g *Gallery) Update() {
	if g.closed {
		return
	}
	g.drain()
	g.ecs.Update()

	systems.BuildFrame(g.ecs, &g.frame)
	g.surface.Render(&g.frame)
}

// Hovered reports whether the pointer is over a card.
func (g *Gallery) Hovered() bool {
	if g.closed {
		return false
	}
	return systems.Hovered(g.ecs)
}

// Centered returns the item closest to the middle of the surface.
func (g *Gallery) Centered() (int, Item, bool) {
	if g.closed {
		return 0, Item{}, false
	}
	index, ok := systems.CenteredItem(g.ecs)
	if !ok {
		return 0, Item{}, false
	}
	return index, components.Gallery.Get(g.entry).Items[index], true
}

// Scroll returns the eased and the requested scroll position in world units.
func (g *Gallery) Scroll() (current, target float64) {
	if g.closed {
		return 0, 0
	}
	s := components.Scroll.Get(g.entry)
	return s.Current, s.Target
}

// SlotWidth returns the distance between neighbouring cards in world units.
func (g *Gallery) SlotWidth() float64 {
	if g.closed {
		return 0
	}
	return systems.SlotWidth(g.ecs)
}

// Pending reports image loads that have not been applied yet.
func (g *Gallery) Pending() int {
	if g.closed {
		return 0
	}
	return g.loader.Pending()
}

// AwaitTextures applies load results until none are pending or ctx is done.
// It must be called from the frame goroutine.
func (g *Gallery) AwaitTextures(ctx context.Context) error {
	if g.closed {
		return ErrClosed
	}
	ticker := time.NewTicker(awaitPoll)
	defer ticker.Stop()

	for {
		g.drain()
		if g.loader.Pending() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Reconfigure applies new options. The scroll position is kept; cards are rebuilt
// only when the items or the text color change.
func (g *Gallery) Reconfigure(opts Options) error {
	if g.closed {
		return ErrClosed
	}
	if opts.Logger == nil {
		opts.Logger = g.opts.Logger
	}
	if opts.OnItemClick == nil {
		opts.OnItemClick = g.opts.OnItemClick
	}
	if opts.Now == nil {
		opts.Now = g.opts.Now
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		screen := components.Screen.Get(g.entry)
		opts.Width, opts.Height = int(screen.Width), int(screen.Height)
	}
	opts = opts.normalize(g.logger)

	data := components.Gallery.Get(g.entry)
	rebuild := !slices.Equal(data.Items, opts.Items) || data.TextColor != opts.TextColor

	data.Bend = opts.Bend
	data.BorderRadius = opts.BorderRadius
	data.ScrollSpeed = opts.ScrollSpeed
	data.PlaceholderColor = opts.PlaceholderColor
	data.Now = opts.Now
	components.Scroll.Get(g.entry).Ease = opts.ScrollEase
	g.opts = opts

	if rebuild {
		data.Items = slices.Clone(opts.Items)
		data.TextColor = opts.TextColor
		data.Generation++
		factory.DestroyMedia(g.ecs, components.HoverSpace.Get(g.entry).Space)
		g.buildMedia()
		g.logger.Debug("gallery rebuilt", zap.Int("items", len(opts.Items)), zap.Uint64("generation", data.Generation))
	}

	g.Resize(opts.Width, opts.Height)
	if rebuild {
		systems.SeatMedia(g.ecs)
	}
	return nil
}

// Close cancels outstanding image loads, releases the surface and empties the world.
// It is safe to call more than once.
func (g *Gallery) Close() {
	g.teardown()
}

func (g *Gallery) teardown() {
	g.closeOnce.Do(func() {
		g.closed = true

		if g.loader != nil {
			g.loader.Close()
		}
		if g.entry != nil && g.entry.Valid() {
			components.Scroll.Get(g.entry).SnapAt = time.Time{}
			factory.DestroyMedia(g.ecs, components.HoverSpace.Get(g.entry).Space)
			g.ecs.World.Remove(g.entry.Entity())
		}
		if g.surface != nil {
			g.surface.Release()
		}
		g.frame.Reset()

		g.logger.Debug("gallery closed")
	})
}

// buildMedia spawns the cards for the current items and requests their images.
func (g *Gallery) buildMedia() {
	data := components.Gallery.Get(g.entry)
	factory.CreateMedia(g.ecs, data)

	for i, item := range data.Items {
		err := g.loader.Load(loader.Request{
			Generation:  data.Generation,
			SourceIndex: i,
			Source:      item.Image,
		})
		if err != nil {
			g.logger.Warn("could not request image", zap.Int("item", i), zap.Error(err))
		}
	}
}

func (g *Gallery) drain() {
	g.loader.Drain(func(r loader.Result) {
		systems.ApplyLoadResult(g.ecs, r, g.logger)
	})
}

func (g *Gallery) fireClick(index int) {
	items := components.Gallery.Get(g.entry).Items
	if index < 0 || index >= len(items) {
		return
	}
	g.logger.Debug("item clicked", zap.Int("item", index), zap.String("label", items[index].Label))
	if g.opts.OnItemClick != nil {
		g.opts.OnItemClick(index, items[index])
	}
}

// entityCount is the number of live entities in the gallery world
func (g *Gallery) entityCount() int {
	return g.ecs.World.Len()
}

func (g *Gallery) mediaCount() int {
	return donburi.NewQuery(filter.Contains(tags.Media)).Count(g.ecs.World)
}
