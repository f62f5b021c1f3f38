package components

import (
	"image"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TextureData is the drawable of a media card. It stays a placeholder until Loaded.
type TextureData struct {
	Source      string
	Image       image.Image
	ImageWidth  int
	ImageHeight int
	Loaded      bool
	Alpha       float64      // Fade-in progress (0.0-1.0)
	Fade        *gween.Tween // nil once the fade has finished
}

var Texture = donburi.NewComponentType[TextureData]()
