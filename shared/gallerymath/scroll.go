// Package gallerymath holds the scroll, layout and wrap arithmetic of the gallery.
// It has no dependencies on ebitengine or donburi so it can be shared by every backend.
package gallerymath

import "math"

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WheelStep returns the target change for one wheel event.
// Any deltaY that is not positive scrolls backwards, matching browser wheel handling.
func WheelStep(deltaY, scrollSpeed, factor float64) float64 {
	if deltaY > 0 {
		return scrollSpeed * factor
	}
	return -scrollSpeed * factor
}

// DragTarget returns the scroll target for a drag that started at startX while the
// scroll position was startPosition.
func DragTarget(startPosition, startX, x, sensitivity float64) float64 {
	return startPosition + (startX-x)*sensitivity
}

// Snap rounds target to the nearest multiple of slot, keeping its sign.
// A non-positive slot leaves target untouched.
func Snap(target, slot float64) float64 {
	if slot <= 0 {
		return target
	}
	item := math.Round(math.Abs(target)/slot) * slot
	if target < 0 {
		return -item
	}
	return item
}

// Direction is the scroll travel direction for one frame.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// TravelDirection derives the direction from the eased position of this and the previous frame.
// A frame without movement counts as leftward, so cards past the right edge fill the left
// side as soon as the strip is laid out.
func TravelDirection(current, last float64) Direction {
	if current > last {
		return DirectionRight
	}
	return DirectionLeft
}
