package scenes

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/gallery"
	"github.com/orbit-social/orbit/render"
	"github.com/orbit-social/orbit/systems"
	"github.com/orbit-social/orbit/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GalleryConfig holds what the gallery scene is started with
type GalleryConfig struct {
	Items   *cfg.ItemsFile
	Assets  fs.FS             // Resolves relative image paths, usually the items file directory
	Watcher *cfg.ItemsWatcher // Optional, delivers edited items files
	Logger  *zap.Logger
}

// GalleryScene hosts one gallery in the ebiten window. Its own ECS polls input
// and settings; the gallery runs in a world of its own.
type GalleryScene struct {
	config GalleryConfig
	root   *zap.Logger
	logger *zap.Logger

	ecs       *ecs.ECS
	gallery   *gallery.Gallery
	surface   *render.EbitenSurface
	captionUI *ui.CaptionUI
	once      sync.Once

	width, height int
	hovered       bool
}

// NewGalleryScene creates a new gallery scene
func NewGalleryScene(config GalleryConfig) *GalleryScene {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryScene{
		config: config,
		root:   logger,
		logger: logger.Named("scene"),
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

// Update advances the scene one tick. It returns ebiten.Termination on quit.
func (gs *GalleryScene) Update() error {
	gs.once.Do(gs.configure)

	gs.ecs.Update()
	input := systems.GetInput(gs.ecs)

	if systems.GetAction(input, cfg.ActionQuit).JustPressed {
		gs.Close()
		return ebiten.Termination
	}
	if gs.gallery == nil {
		return nil
	}

	gs.applySettings()
	gs.applyItemsUpdates()
	gs.forwardInput()

	gs.gallery.Update()

	if _, item, ok := gs.gallery.Centered(); ok {
		gs.captionUI.SetCentered(item.Label)
	} else {
		gs.captionUI.SetCentered("")
	}
	gs.captionUI.SetInputMethod(input.LastInputMethod)
	gs.captionUI.Update()

	if hovered := gs.gallery.Hovered(); hovered != gs.hovered {
		gs.hovered = hovered
		if hovered {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
	return nil
}

func (gs *GalleryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.surface == nil {
		return
	}
	gs.surface.DrawTo(screen)
	gs.captionUI.UI.Draw(screen)

	if cfg.Debug.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f  pending: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), gs.gallery.Pending()))
	}
}

// Layout resizes the gallery to the window size in pixels
func (gs *GalleryScene) Layout(width, height int) {
	if width == gs.width && height == gs.height {
		return
	}
	gs.width, gs.height = width, height
	if gs.gallery != nil {
		gs.gallery.Resize(width, height)
	}
}

// Close tears the gallery down and stops watching the items file
func (gs *GalleryScene) Close() {
	if gs.gallery != nil {
		gs.gallery.Close()
	}
	if gs.config.Watcher != nil {
		gs.config.Watcher.Stop()
	}
}

func (gs *GalleryScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Input first, settings read the polled actions
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdatePointerInput)
	gs.ecs.AddSystem(systems.UpdateSettings)

	gs.captionUI = ui.NewCaptionUI()

	// The surface needs a running graphics driver, so it is created on the first tick
	ready := make(chan render.Surface, 1)
	surface, err := render.NewEbitenSurface()
	if err != nil {
		gs.logger.Error("could not create render surface", zap.Error(err))
		close(ready)
	} else {
		gs.surface = surface
		ready <- surface
	}

	g, err := gallery.New(context.Background(), gs.options(), render.Await(ready))
	if err != nil {
		gs.logger.Warn("gallery disabled", zap.Error(err))
		gs.surface = nil
		return
	}
	gs.gallery = g

	if gs.config.Watcher != nil {
		if err := gs.config.Watcher.Start(context.Background()); err != nil {
			gs.logger.Warn("could not watch items file", zap.Error(err))
		}
	}
}

// options merges the items file with the persisted settings. Persisted bend and
// scroll speed win over the file.
func (gs *GalleryScene) options() gallery.Options {
	settings := systems.GetOrCreateSettings(gs.ecs)

	opts := gallery.DefaultOptions().WithItemsFile(gs.config.Items)
	opts.Bend = settings.Bend
	opts.ScrollSpeed = settings.ScrollSpeed
	opts.Width, opts.Height = gs.width, gs.height
	opts.Logger = gs.root
	opts.Assets = gs.config.Assets
	opts.OnItemClick = gs.onItemClick
	return opts
}

func (gs *GalleryScene) onItemClick(index int, item gallery.Item) {
	gs.logger.Info("item selected", zap.Int("index", index), zap.String("label", item.Label))
	gs.captionUI.SetSelected(item.Label)
}

func (gs *GalleryScene) reconfigure() {
	if err := gs.gallery.Reconfigure(gs.options()); err != nil {
		gs.logger.Warn("could not reconfigure gallery", zap.Error(err))
	}
}

func (gs *GalleryScene) applySettings() {
	if systems.GetOrCreateSettings(gs.ecs).Changed {
		gs.reconfigure()
	}
}

func (gs *GalleryScene) applyItemsUpdates() {
	if gs.config.Watcher == nil {
		return
	}
	select {
	case f := <-gs.config.Watcher.Updates():
		gs.config.Items = f
		gs.captionUI.SetSelected("")
		gs.reconfigure()
	default:
	}
}

func (gs *GalleryScene) forwardInput() {
	input := systems.GetInput(gs.ecs)
	p := systems.GetPointer(gs.ecs)

	// Ebiten reports wheel-up as positive, the gallery scrolls forward on wheel-down
	if p.WheelY != 0 {
		gs.gallery.Wheel(-p.WheelY)
	}

	if p.Pressed {
		gs.gallery.PointerDown(p.X)
	}
	if p.Moved {
		gs.gallery.PointerMove(p.X, p.Y)
	}
	if p.Released {
		gs.gallery.PointerUp()
		gs.gallery.Click()
	}

	if systems.GetAction(input, cfg.ActionPrevious).JustPressed {
		gs.gallery.Step(-1)
	}
	if systems.GetAction(input, cfg.ActionNext).JustPressed {
		gs.gallery.Step(1)
	}
	if systems.GetAction(input, cfg.ActionSelect).JustPressed {
		gs.gallery.Select()
	}
}
