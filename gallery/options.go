package gallery

import (
	"image/color"
	"io/fs"
	"net/http"
	"time"

	cfg "github.com/orbit-social/orbit/config"
	"go.uber.org/zap"
)

// Item is one gallery card: an image source and its caption.
type Item = cfg.Item

// Options configures a Gallery. Start from DefaultOptions and override fields.
type Options struct {
	Items        []Item
	Bend         float64 // 0 is a flat row, the sign flips the arc
	TextColor    color.RGBA
	BorderRadius float64 // Fraction of the card (0.0-0.5)
	ScrollSpeed  float64
	ScrollEase   float64 // (0.0-1.0]

	// OnItemClick is called with the source index of the clicked item
	OnItemClick func(index int, item Item)

	Width  int // Initial surface size in pixels
	Height int

	Logger           *zap.Logger
	Assets           fs.FS // Relative image paths resolve here first
	HTTPClient       *http.Client
	Now              func() time.Time
	PlaceholderColor color.RGBA
	LoadConcurrency  int
}

// DefaultOptions returns the stock gallery look with no items.
func DefaultOptions() Options {
	return Options{
		Bend:             cfg.Gallery.Bend,
		TextColor:        cfg.Gallery.TextColor,
		BorderRadius:     cfg.Gallery.BorderRadius,
		ScrollSpeed:      cfg.Gallery.ScrollSpeed,
		ScrollEase:       cfg.Gallery.ScrollEase,
		Width:            cfg.C.Width,
		Height:           cfg.C.Height,
		PlaceholderColor: cfg.Gallery.PlaceholderColor,
		LoadConcurrency:  cfg.Gallery.LoadConcurrency,
	}
}

// WithItemsFile returns o with the items and every setting present in f.
func (o Options) WithItemsFile(f *cfg.ItemsFile) Options {
	if f == nil {
		return o
	}
	o.Items = append([]Item(nil), f.Items...)
	if f.Bend != nil {
		o.Bend = *f.Bend
	}
	if f.BorderRadius != nil {
		o.BorderRadius = *f.BorderRadius
	}
	if f.ScrollSpeed != nil {
		o.ScrollSpeed = *f.ScrollSpeed
	}
	if f.ScrollEase != nil {
		o.ScrollEase = *f.ScrollEase
	}
	if f.TextColor != "" {
		if c, err := cfg.ParseHexColor(f.TextColor); err == nil {
			o.TextColor = c
		}
	}
	return o
}

// normalize replaces unusable values with defaults, logging each replacement.
func (o Options) normalize(logger *zap.Logger) Options {
	def := DefaultOptions()

	if o.ScrollEase <= 0 || o.ScrollEase > 1 {
		if o.ScrollEase != 0 {
			logger.Warn("scroll ease out of range, using default", zap.Float64("ease", o.ScrollEase))
		}
		o.ScrollEase = def.ScrollEase
	}
	if o.ScrollSpeed <= 0 {
		if o.ScrollSpeed != 0 {
			logger.Warn("scroll speed must be positive, using default", zap.Float64("speed", o.ScrollSpeed))
		}
		o.ScrollSpeed = def.ScrollSpeed
	}
	if o.BorderRadius < 0 || o.BorderRadius > 0.5 {
		logger.Warn("border radius out of range, using default", zap.Float64("radius", o.BorderRadius))
		o.BorderRadius = def.BorderRadius
	}
	if o.TextColor.A == 0 {
		o.TextColor = def.TextColor
	}
	if o.PlaceholderColor.A == 0 {
		o.PlaceholderColor = def.PlaceholderColor
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.LoadConcurrency <= 0 {
		o.LoadConcurrency = def.LoadConcurrency
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
