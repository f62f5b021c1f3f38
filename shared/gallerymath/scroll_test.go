package gallerymath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpConvergesMonotonically(t *testing.T) {
	const eps = 1e-4
	for _, ease := range []float64{0.05, 0.3, 1} {
		for _, target := range []float64{1, -250, 1000} {
			current := 0.0
			gap := math.Abs(target - current)
			limit := int(math.Ceil(math.Log(gap/eps)/ease)) + 1

			frames := 0
			for gap >= eps {
				current = Lerp(current, target, ease)
				next := math.Abs(target - current)
				if next >= gap {
					t.Fatalf("ease=%v target=%v: gap did not shrink (%v -> %v)", ease, target, gap, next)
				}
				gap = next
				frames++
				if frames > limit {
					t.Fatalf("ease=%v target=%v: not converged after %d frames", ease, target, limit)
				}
			}
		}
	}
}

func TestWheelStep(t *testing.T) {
	assert.InDelta(t, 0.4, WheelStep(120, 2, 0.2), 1e-12)
	assert.InDelta(t, -0.4, WheelStep(-3, 2, 0.2), 1e-12)
	assert.InDelta(t, -0.4, WheelStep(0, 2, 0.2), 1e-12, "zero delta scrolls backwards")

	target := 0.0
	for i := 0; i < 5; i++ {
		target += WheelStep(1, 2, 0.2)
	}
	assert.InDelta(t, 2.0, target, 1e-12)
}

func TestDragTarget(t *testing.T) {
	sensitivity := 2 * 0.025
	assert.InDelta(t, 5.0, DragTarget(0, 300, 200, sensitivity), 1e-12)
	assert.InDelta(t, 7.0-5.0, DragTarget(7, 200, 300, sensitivity), 1e-12)
	assert.InDelta(t, 7.0, DragTarget(7, 200, 200, sensitivity), 1e-12)
}

func TestSnap(t *testing.T) {
	cases := []struct {
		target, slot, want float64
	}{
		{170, 100, 200},
		{-170, 100, -200},
		{149, 100, 100},
		{-149, 100, -100},
		{305, 120, 360},
		{0, 100, 0},
		{42, 0, 42},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Snap(c.target, c.slot), 1e-9, "Snap(%v, %v)", c.target, c.slot)
	}
}

func TestTravelDirection(t *testing.T) {
	assert.Equal(t, DirectionRight, TravelDirection(1, 0))
	assert.Equal(t, DirectionLeft, TravelDirection(-1, 0))
	assert.Equal(t, DirectionLeft, TravelDirection(2, 2), "standing still counts as leftward")
	assert.Equal(t, "right", DirectionRight.String())
}
