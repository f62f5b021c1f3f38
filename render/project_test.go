package render

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffineMapsCornersAndCenter(t *testing.T) {
	frame := testFrame(800, 600)
	proj := NewProjection(frame)
	src := image.Rect(0, 0, 100, 50)

	for _, rot := range []float64{0, 0.3, -1.2} {
		aff := proj.Affine(2, -1, rot, 4, 2, src)
		apply := func(sx, sy float64) (float64, float64) {
			return aff[0]*sx + aff[1]*sy + aff[2], aff[3]*sx + aff[4]*sy + aff[5]
		}

		cx, cy := apply(50, 25)
		wx, wy := proj.Point(2, -1)
		assert.InDelta(t, wx, cx, 1e-9)
		assert.InDelta(t, wy, cy, 1e-9)

		// Top-left source pixel is the plane's upper-left corner in local space
		sin, cos := math.Sincos(rot)
		lx, ly := 2+cos*-2-sin*1, -1+sin*-2+cos*1
		ex, ey := proj.Point(lx, ly)
		tx, ty := apply(0, 0)
		assert.InDelta(t, ex, tx, 1e-9)
		assert.InDelta(t, ey, ty, 1e-9)
	}
}

func TestAffineHonorsSourceOffset(t *testing.T) {
	proj := NewProjection(testFrame(800, 600))
	a := proj.Affine(0, 0, 0, 4, 4, image.Rect(0, 0, 10, 10))
	b := proj.Affine(0, 0, 0, 4, 4, image.Rect(5, 5, 15, 15))

	// Same destination for the first pixel of each source
	assert.InDelta(t, a[2], b[0]*5+b[2], 1e-9)
	assert.InDelta(t, a[5], b[4]*5+b[5], 1e-9)
}

func TestChildCenterFollowsRotation(t *testing.T) {
	x, y := ChildCenter(1, 1, 0, -3)
	assert.InDelta(t, 1, x, 1e-12)
	assert.InDelta(t, -2, y, 1e-12)

	x, y = ChildCenter(0, 0, math.Pi/2, -3)
	assert.InDelta(t, 3, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
}

func TestBoundsContainsRotatedPlane(t *testing.T) {
	proj := NewProjection(testFrame(800, 600))
	flat := proj.Bounds(0, 0, 0, 4, 2)
	tilted := proj.Bounds(0, 0, 0.5, 4, 2)

	assert.True(t, tilted.Dy() > flat.Dy())
	assert.InDelta(t, 400, float64(flat.Min.X+flat.Max.X)/2, 1)
	assert.InDelta(t, 300, float64(flat.Min.Y+flat.Max.Y)/2, 1)
}
