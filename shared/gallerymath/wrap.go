package gallerymath

import "math"

// WrapState is the per-item wrap bookkeeping of one frame.
type WrapState struct {
	Extra    float64
	IsBefore bool
	IsAfter  bool
}

// Position returns the rendered offset of an item whose base offset is x.
func Position(x, current, extra float64) float64 {
	return x - current - extra
}

// Wrap updates the flags for an item at base offset x and teleports it to the opposite
// edge when it has fully left the viewport in the direction of travel. The teleport is
// a whole number of widthTotal steps, enough to bring the item back even after a jump
// of several gallery lengths in one frame.
func Wrap(ws WrapState, x, current, planeWidth, viewportWidth, widthTotal float64, dir Direction) WrapState {
	planeOffset := planeWidth / 2
	viewportOffset := viewportWidth / 2

	pos := Position(x, current, ws.Extra)
	ws.IsBefore = pos+planeOffset < -viewportOffset
	ws.IsAfter = pos-planeOffset > viewportOffset

	if widthTotal <= 0 {
		return ws
	}

	if dir == DirectionRight && ws.IsBefore {
		steps := math.Ceil((-viewportOffset - planeOffset - pos) / widthTotal)
		ws.Extra -= steps * widthTotal
		ws.IsBefore, ws.IsAfter = false, false
	}
	if dir == DirectionLeft && ws.IsAfter {
		steps := math.Ceil((pos - planeOffset - viewportOffset) / widthTotal)
		ws.Extra += steps * widthTotal
		ws.IsBefore, ws.IsAfter = false, false
	}
	return ws
}

// Seat returns the teleport offset that places an item at base offset x within half a
// gallery length of the center, for items spawned while the strip is already scrolled.
func Seat(x, current, widthTotal float64) float64 {
	if widthTotal <= 0 {
		return 0
	}
	rel := x - current
	pos := math.Mod(rel+widthTotal/2, widthTotal)
	if pos < 0 {
		pos += widthTotal
	}
	return rel - (pos - widthTotal/2)
}

// WrapCovers reports whether the strip is long enough for every item to stay within one
// gallery length of the center. Shorter strips leave gaps on wide viewports.
func WrapCovers(planeWidth, viewportWidth, widthTotal float64) bool {
	return viewportWidth/2+planeWidth/2 <= widthTotal
}
