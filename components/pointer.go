package components

import "github.com/yohamta/donburi"

// PointerData tracks a mouse or touch press on the gallery
type PointerData struct {
	Down    bool    // Press in progress
	StartX  float64 // Pixel X where the press started
	LastX   float64 // Latest pixel X
	LastY   float64 // Latest pixel Y (hover only)
	Dragged bool    // Moved past the drag threshold since the press started
}

var Pointer = donburi.NewComponentType[PointerData]()
