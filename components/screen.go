package components

import "github.com/yohamta/donburi"

// ScreenData holds the surface size and the derived world-unit viewport
type ScreenData struct {
	Width          float64 // Pixels
	Height         float64 // Pixels
	ViewportWidth  float64 // World units
	ViewportHeight float64 // World units
}

var Screen = donburi.NewComponentType[ScreenData]()
