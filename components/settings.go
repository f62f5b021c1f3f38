package components

import "github.com/yohamta/donburi"

// SettingsData holds the app settings the viewer can change at runtime
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	Bend            float64
	ScrollSpeed     float64

	// Changed is set when a value changed this frame and cleared by the next update
	Changed bool
}

// Settings is the component type for app settings
var Settings = donburi.NewComponentType[SettingsData]()
