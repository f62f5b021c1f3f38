package gallerymath

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeViewport(t *testing.T) {
	vp := ComputeViewport(1280, 720, 45, 20)
	wantHeight := 2 * math.Tan(math.Pi/8) * 20
	assert.InDelta(t, wantHeight, vp.Height, 1e-9)
	assert.InDelta(t, wantHeight*1280/720, vp.Width, 1e-9)
	assert.InDelta(t, 720/wantHeight, PixelsPerUnit(720, vp), 1e-9)
}

func TestComputeViewportZeroHeight(t *testing.T) {
	vp := ComputeViewport(800, 0, 45, 20)
	assert.False(t, math.IsInf(vp.Width, 0))
	assert.False(t, math.IsNaN(vp.Width))
	assert.Equal(t, ComputeViewport(800, 1, 45, 20), vp)
}

func TestComputeViewportIdempotent(t *testing.T) {
	assert.Equal(t, ComputeViewport(1024, 600, 45, 20), ComputeViewport(1024, 600, 45, 20))
}

func TestCoverRect(t *testing.T) {
	assert.Equal(t, image.Rect(250, 0, 750, 500), CoverRect(1000, 500, 4, 4))
	assert.Equal(t, image.Rect(0, 250, 500, 750), CoverRect(500, 1000, 4, 4))
	assert.Equal(t, image.Rect(0, 0, 800, 600), CoverRect(800, 600, 8, 6))
	assert.Equal(t, image.Rect(0, 0, 0, 0), CoverRect(0, 0, 8, 6))
}
