package fonts

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
)

func TestRasterizeLabelSize(t *testing.T) {
	LoadDefaults(24)
	face := BoldLabel.Get()

	img := RasterizeLabel("Travel Squad", face, 24, 1.2, 40, color.White)

	wantW := font.MeasureString(face, "Travel Squad").Ceil() + 40
	wantH := int(math.Ceil(24*1.2)) + 40
	assert.Equal(t, wantW, img.Bounds().Dx())
	assert.Equal(t, wantH, img.Bounds().Dy())
}

func TestRasterizeLabelPaintsGlyphs(t *testing.T) {
	LoadDefaults(24)
	img := RasterizeLabel("Dev Team", BoldLabel.Get(), 24, 1.2, 40, color.RGBA{255, 0, 0, 255})

	var painted int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			painted++
		}
	}
	assert.Greater(t, painted, 0)

	// Padding stays transparent
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestRasterizeLabelEmpty(t *testing.T) {
	LoadDefaults(24)
	img := RasterizeLabel("", BoldLabel.Get(), 24, 1.2, 0, color.White)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestGetMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
