package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ScrollData is the eased scroll position of a gallery
type ScrollData struct {
	Current  float64   // Eased position, advanced once per frame
	Target   float64   // Position requested by input
	Last     float64   // Current of the previous frame
	Ease     float64   // Damping factor (0.0-1.0]
	Position float64   // Current when the active drag started
	SnapAt   time.Time // Deadline of the debounced snap (zero = none pending)
}

var Scroll = donburi.NewComponentType[ScrollData]()
