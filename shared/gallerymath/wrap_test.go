package gallerymath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wrapItem struct {
	x  float64
	ws WrapState
}

func newWrapItems(n int, width float64) []wrapItem {
	items := make([]wrapItem, 2*n)
	for i := range items {
		items[i].x = width * float64(i)
	}
	return items
}

func TestWrapKeepsItemsNearViewport(t *testing.T) {
	const (
		planeWidth    = 6.63
		viewportWidth = 29.46
		width         = planeWidth + 1.5
	)
	items := newWrapItems(6, width)
	widthTotal := width * float64(len(items))

	current, last := 0.0, 0.0
	for _, step := range []float64{0.7, -0.7, 3.1, -9.4} {
		for frame := 0; frame < 4000; frame++ {
			last, current = current, current+step
			dir := TravelDirection(current, last)
			for i := range items {
				it := &items[i]
				it.ws = Wrap(it.ws, it.x, current, planeWidth, viewportWidth, widthTotal, dir)
				pos := Position(it.x, current, it.ws.Extra)
				require.LessOrEqualf(t, math.Abs(pos), widthTotal,
					"step=%v frame=%d item=%d pos=%v", step, frame, i, pos)
			}
		}
	}
}

func TestWrapLargeJump(t *testing.T) {
	const planeWidth, viewportWidth, width = 6.0, 30.0, 7.5
	items := newWrapItems(5, width)
	widthTotal := width * float64(len(items))

	for i := range items {
		it := &items[i]
		it.ws = Wrap(it.ws, it.x, 1e6, planeWidth, viewportWidth, widthTotal, DirectionRight)
		pos := Position(it.x, 1e6, it.ws.Extra)
		assert.False(t, it.ws.IsBefore)
		assert.LessOrEqual(t, math.Abs(pos), widthTotal)
	}
}

func TestWrapFlags(t *testing.T) {
	ws := Wrap(WrapState{}, -30, 0, 4, 20, 100, DirectionNone)
	assert.True(t, ws.IsBefore)
	assert.False(t, ws.IsAfter)
	assert.Zero(t, ws.Extra, "no travel, no teleport")

	ws = Wrap(WrapState{}, -30, 0, 4, 20, 100, DirectionRight)
	assert.InDelta(t, -100, ws.Extra, 1e-12)
	assert.False(t, ws.IsBefore)

	ws = Wrap(WrapState{}, 30, 0, 4, 20, 100, DirectionLeft)
	assert.InDelta(t, 100, ws.Extra, 1e-12)
	assert.False(t, ws.IsAfter)

	ws = Wrap(WrapState{}, 30, 0, 4, 20, 0, DirectionLeft)
	assert.True(t, ws.IsAfter, "zero gallery width never teleports")
}

func TestSeatPlacesItemsScrolledFar(t *testing.T) {
	const (
		planeWidth    = 6.63
		viewportWidth = 29.46
		width         = planeWidth + 1.5
	)
	items := newWrapItems(2, width)
	total := width * float64(len(items))
	current := 20 * width
	require.True(t, WrapCovers(planeWidth, viewportWidth, total))

	for i := range items {
		items[i].ws.Extra = Seat(items[i].x, current, total)
	}

	// The strip has settled, so every frame travels left
	for frame := 0; frame < 300; frame++ {
		visible := 0
		for i := range items {
			it := &items[i]
			it.ws = Wrap(it.ws, it.x, current, planeWidth, viewportWidth, total, TravelDirection(current, current))
			pos := Position(it.x, current, it.ws.Extra)
			require.LessOrEqual(t, math.Abs(pos), total, "item %d frame %d", i, frame)
			if !it.ws.IsBefore && !it.ws.IsAfter {
				visible++
			}
		}
		require.Positive(t, visible, "frame %d", frame)
	}
}

func TestSeat(t *testing.T) {
	tests := []struct {
		name              string
		x, current, total float64
		want              float64
	}{
		{"unscrolled", 5, 0, 40, 0},
		{"scrolled forward", 5, 100, 40, -80},
		{"scrolled back", 5, -100, 40, 120},
		{"empty strip", 5, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extra := Seat(tt.x, tt.current, tt.total)
			assert.InDelta(t, tt.want, extra, 1e-9)
			if tt.total > 0 {
				pos := Position(tt.x, tt.current, extra)
				assert.GreaterOrEqual(t, pos, -tt.total/2)
				assert.Less(t, pos, tt.total/2)
			}
		})
	}
}

func TestWrapCovers(t *testing.T) {
	assert.True(t, WrapCovers(6.63, 29.46, 48.78))
	assert.False(t, WrapCovers(6.63, 88.4, 16.26))
}
