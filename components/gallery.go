package components

import (
	"image/color"
	"time"

	"github.com/orbit-social/orbit/config"
	"github.com/yohamta/donburi"
)

// GalleryData holds the per-instance settings of one gallery
type GalleryData struct {
	Items            []config.Item
	Bend             float64
	TextColor        color.RGBA
	BorderRadius     float64
	ScrollSpeed      float64
	PlaceholderColor color.RGBA

	// Generation increases every time the media set is rebuilt.
	// Async results tagged with an older generation are dropped.
	Generation uint64

	Now func() time.Time
}

var Gallery = donburi.NewComponentType[GalleryData]()
