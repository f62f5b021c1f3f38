package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// TitleData is the rasterized label under a media card
type TitleData struct {
	Text    string
	Image   *image.RGBA
	Aspect  float64 // Image width / height
	Width   float64 // World units
	Height  float64 // World units
	OffsetY float64 // From the plane center, in the plane's rotated frame
}

var Title = donburi.NewComponentType[TitleData]()
