package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// roundedMask is an alpha mask of a rounded rectangle covering rect. Radius is a
// fraction of each side, the same rounded-box distance the ebiten shader uses.
type roundedMask struct {
	rect   image.Rectangle
	radius float64
	alpha  float64
}

func (m roundedMask) ColorModel() color.Model { return color.Alpha16Model }

func (m roundedMask) Bounds() image.Rectangle { return m.rect }

func (m roundedMask) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.rect) {
		return color.Alpha16{}
	}
	u := (float64(x-m.rect.Min.X)+0.5)/float64(m.rect.Dx()) - 0.5
	v := (float64(y-m.rect.Min.Y)+0.5)/float64(m.rect.Dy()) - 0.5

	d := roundedBoxSDF(u, v, 0.5-m.radius, 0.5-m.radius, m.radius)
	a := 1 - smoothstep(-0.002, 0.002, d)
	return color.Alpha16{A: uint16(math.Round(a * m.alpha * 0xffff))}
}

func roundedBoxSDF(px, py, bx, by, r float64) float64 {
	dx := math.Abs(px) - bx
	dy := math.Abs(py) - by
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside - r
}

func smoothstep(e0, e1, x float64) float64 {
	t := math.Max(0, math.Min(1, (x-e0)/(e1-e0)))
	return t * t * (3 - 2*t)
}

// composeRounded copies sr of src into a new image with the rounded mask applied.
func composeRounded(src image.Image, sr image.Rectangle, radius, alpha float64) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	mask := roundedMask{rect: dst.Bounds(), radius: radius, alpha: alpha}
	draw.DrawMask(dst, dst.Bounds(), src, sr.Min, mask, image.Point{}, draw.Src)
	return dst
}
