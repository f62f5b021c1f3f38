// Package render turns gallery frames into pixels. A Frame is a flat scene graph of
// rotated planes on the z=0 plane; surfaces project it onto a screen.
package render

import (
	"image"
	"image/color"

	"github.com/orbit-social/orbit/shared/gallerymath"
)

// Frame is everything a surface needs to draw one gallery frame.
// Surfaces must not keep a Frame after the next call to Render.
type Frame struct {
	ScreenWidth  int
	ScreenHeight int
	Viewport     gallerymath.Viewport
	Planes       []Plane
}

// Plane is one media card in world units, centered at (X, Y), y pointing up.
type Plane struct {
	DisplayIndex int
	SourceIndex  int

	X, Y     float64
	Rotation float64 // Radians, counter-clockwise about the view axis
	Width    float64
	Height   float64

	BorderRadius float64 // Fraction of the plane (0.0-0.5)
	Placeholder  color.RGBA
	Texture      image.Image // nil until loaded
	TextureAlpha float64

	Speed float64
	Time  float64

	Hovered bool
	Title   *Title
}

// Title is a label attached below its plane and rotated with it.
type Title struct {
	Image   *image.RGBA
	Width   float64
	Height  float64
	OffsetY float64
}

// Reset empties the frame, keeping its plane storage.
func (f *Frame) Reset() {
	clear(f.Planes)
	f.Planes = f.Planes[:0]
}
