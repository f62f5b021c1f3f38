package gallerymath

import (
	"image"
	"math"
)

// CoverRect returns the centered sub-rectangle of an imageWidth x imageHeight source that
// fills a plane of the given aspect without distortion, cropping the overflowing axis.
func CoverRect(imageWidth, imageHeight int, planeWidth, planeHeight float64) image.Rectangle {
	if imageWidth <= 0 || imageHeight <= 0 || planeWidth <= 0 || planeHeight <= 0 {
		return image.Rect(0, 0, max(imageWidth, 0), max(imageHeight, 0))
	}

	planeAspect := planeWidth / planeHeight
	imageAspect := float64(imageWidth) / float64(imageHeight)

	ratioX := math.Min(planeAspect/imageAspect, 1)
	ratioY := math.Min(imageAspect/planeAspect, 1)

	w := int(math.Round(float64(imageWidth) * ratioX))
	h := int(math.Round(float64(imageHeight) * ratioY))
	x0 := (imageWidth - w) / 2
	y0 := (imageHeight - h) / 2
	return image.Rect(x0, y0, x0+w, y0+h)
}
