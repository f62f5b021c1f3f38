package main

import (
	"errors"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orbit-social/orbit/assets"
	"github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/scenes"
	"github.com/orbit-social/orbit/systems"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the gallery always fills it
func (g *Game) Layout(width, height int) (int, int) {
	width, height = max(width, 1), max(height, 1)
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	var (
		itemsPath string
		watch     bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:          "orbit",
		Short:        "Browse an image gallery on a bent, endless carousel",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			config.Debug.ShowFPS = debug
			config.Debug.ShowBounds = debug

			sceneConfig := scenes.GalleryConfig{
				Items:  assets.DefaultItems(),
				Logger: logger,
			}
			if itemsPath != "" {
				dir := filepath.Dir(itemsPath)
				sceneConfig.Items, err = config.LoadItems(os.DirFS(dir), filepath.Base(itemsPath))
				if err != nil {
					return err
				}
				sceneConfig.Assets = os.DirFS(dir)

				if watch {
					sceneConfig.Watcher, err = config.NewItemsWatcher(itemsPath, logger)
					if err != nil {
						logger.Warn("could not create items watcher", zap.Error(err))
					}
				}
			}

			ebiten.SetWindowSize(config.C.Width, config.C.Height)
			ebiten.SetWindowTitle(config.C.Title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(config.C.TPS)

			// Initialize persistence and load saved settings
			if err := systems.InitPersistence(logger); err != nil {
				logger.Warn("could not initialize persistence", zap.Error(err))
			}
			if saved, err := systems.LoadSettings(); err == nil && saved != nil {
				systems.ApplySavedSettingsGlobal(saved)
			}

			scene := scenes.NewGalleryScene(sceneConfig)
			defer scene.Close()

			if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&itemsPath, "items", "i", "", "YAML items file (default: bundled gallery)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "reload the items file when it changes")
	cmd.Flags().BoolVar(&debug, "debug", false, "show FPS and card bounds")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
