package render

import (
	"image"
	"math"

	"github.com/orbit-social/orbit/shared/gallerymath"
	"golang.org/x/image/math/f64"
)

// Projection maps world units on the z=0 plane to screen pixels.
type Projection struct {
	CenterX float64
	CenterY float64
	PPU     float64 // Pixels per world unit
}

// NewProjection builds the projection of a frame.
func NewProjection(f *Frame) Projection {
	return Projection{
		CenterX: float64(f.ScreenWidth) / 2,
		CenterY: float64(f.ScreenHeight) / 2,
		PPU:     gallerymath.PixelsPerUnit(float64(f.ScreenHeight), f.Viewport),
	}
}

// Point returns the pixel position of a world point.
func (p Projection) Point(x, y float64) (float64, float64) {
	return p.CenterX + x*p.PPU, p.CenterY - y*p.PPU
}

// Affine returns the transform from source pixels in src to screen pixels, for a
// w x h rectangle centered at (x, y) and rotated by rot.
func (p Projection) Affine(x, y, rot, w, h float64, src image.Rectangle) f64.Aff3 {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw <= 0 || sh <= 0 {
		return f64.Aff3{}
	}
	sin, cos := math.Sincos(rot)

	// Source pixel to plane-local units (u right, v up)
	a := w / sw
	b := -float64(src.Min.X)*a - w/2
	c := -h / sh
	d := h/2 + float64(src.Min.Y)*h/sh

	return f64.Aff3{
		p.PPU * cos * a, -p.PPU * sin * c, p.CenterX + p.PPU*x + p.PPU*cos*b - p.PPU*sin*d,
		-p.PPU * sin * a, -p.PPU * cos * c, p.CenterY - p.PPU*y - p.PPU*sin*b - p.PPU*cos*d,
	}
}

// ChildCenter returns the world center of a child offset by offsetY in the parent's rotated frame.
func ChildCenter(x, y, rot, offsetY float64) (float64, float64) {
	sin, cos := math.Sincos(rot)
	return x - sin*offsetY, y + cos*offsetY
}

// Bounds returns the axis-aligned pixel box of a rotated plane.
func (p Projection) Bounds(x, y, rot, w, h float64) image.Rectangle {
	sin, cos := math.Sincos(rot)
	hw := (math.Abs(cos)*w + math.Abs(sin)*h) / 2
	hh := (math.Abs(sin)*w + math.Abs(cos)*h) / 2
	x0, y0 := p.Point(x-hw, y+hh)
	x1, y1 := p.Point(x+hw, y-hh)
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
