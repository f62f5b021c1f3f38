package components

import "github.com/yohamta/donburi"

// MediaData is one card of the duplicated gallery strip
type MediaData struct {
	SourceIndex  int // Index into the configured items
	DisplayIndex int // Index into the duplicated strip (0 to 2N-1)
	Length       int // Size of the duplicated strip

	// Sizing, recomputed on resize
	Scale       float64 // Screen height / reference height
	PlaneWidth  float64 // World units
	PlaneHeight float64 // World units
	Width       float64 // Slot width: plane width plus padding
	WidthTotal  float64 // Width * Length
	X           float64 // Base offset: Width * DisplayIndex

	// Wrap bookkeeping
	Extra    float64 // Accumulated teleport offset
	IsBefore bool    // Fully past the left edge
	IsAfter  bool    // Fully past the right edge

	// Layout of the current frame
	PosX     float64
	PosY     float64
	Rotation float64 // Radians about the view axis
	Speed    float64 // Current - Last
	Time     float64 // Wave phase
	Hovered  bool
}

var Media = donburi.NewComponentType[MediaData]()
