package fonts

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterizeLabel renders text centered on a transparent canvas.
// The canvas is the measured text width plus padding wide and
// ceil(size*lineHeight) plus padding tall.
func RasterizeLabel(text string, face font.Face, size, lineHeight float64, padding int, clr color.Color) *image.RGBA {
	textWidth := font.MeasureString(face, text).Ceil()
	textHeight := int(math.Ceil(size * lineHeight))

	w := textWidth + padding
	h := textHeight + padding
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))

	// Vertically center on the glyph box, like a "middle" baseline
	m := face.Metrics()
	baseline := fixed.I(h/2) + (m.Ascent-m.Descent)/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(padding / 2), Y: baseline},
	}
	d.DrawString(text)

	return dst
}
