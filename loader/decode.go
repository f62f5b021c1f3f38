package loader

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// maxImageBytes caps how much of a source is read before decoding.
const maxImageBytes = 32 << 20

// Decode reads an image in any registered format and returns it as NRGBA.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(io.LimitReader(r, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return toNRGBA(img), format, nil
}

// toNRGBA converts any image to NRGBA with its origin at (0,0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
