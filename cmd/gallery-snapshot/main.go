package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/orbit-social/orbit/assets"
	"github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/snapshot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var (
		itemsPath string
		c         snapshot.Config
		bend      float64
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "gallery-snapshot",
		Short: "Render gallery frames without a window",
		Long: `Loads an items file, waits for its images, applies wheel input, runs the
requested number of frames and writes the last frame (or every frame with
--sequence) as WebP. An --out path ending in .png writes PNG instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			c.Logger = logger

			if itemsPath == "" {
				c.Items = assets.DefaultItems()
			} else {
				dir := filepath.Dir(itemsPath)
				c.Items, err = config.LoadItems(os.DirFS(dir), filepath.Base(itemsPath))
				if err != nil {
					return err
				}
				c.Assets = os.DirFS(dir)
			}
			if cmd.Flags().Changed("bend") {
				c.Bend = &bend
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			paths, err := snapshot.Run(ctx, c)
			if err != nil {
				return err
			}
			for _, p := range paths {
				cmd.Println(p)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&itemsPath, "items", "i", "", "YAML items file (default: bundled gallery)")
	flags.IntVar(&c.Width, "width", config.C.Width, "output width in pixels")
	flags.IntVar(&c.Height, "height", config.C.Height, "output height in pixels")
	flags.IntVarP(&c.Frames, "frames", "n", 60, "frames to run before capturing")
	flags.IntVar(&c.Wheel, "wheel", 0, "wheel events to apply, negative scrolls back")
	flags.Float64Var(&bend, "bend", config.Gallery.Bend, "arc strength, overrides the items file")
	flags.StringVarP(&c.Out, "out", "o", "gallery.webp", "output file, or directory with --sequence")
	flags.BoolVar(&c.Sequence, "sequence", false, "write every frame")
	flags.DurationVar(&c.LoadTimeout, "load-timeout", config.Media.LoadTimeout, "how long to wait for images")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
