package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputTouch
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// PointerInputData is the mouse or touch state polled this frame
type PointerInputData struct {
	X, Y     float64 // Pixels
	WheelY   float64 // Vertical wheel delta, 0 when the wheel did not move
	Pressed  bool    // Press started this frame
	Released bool    // Press ended this frame
	Held     bool
	Moved    bool

	TouchID    ebiten.TouchID // Active touch when UsingTouch
	UsingTouch bool
}

var PointerInput = donburi.NewComponentType[PointerInputData]()

// SetPosition moves the pointer and flags whether it changed
func (p *PointerInputData) SetPosition(x, y int) {
	nx, ny := float64(x), float64(y)
	p.Moved = nx != p.X || ny != p.Y
	p.X, p.Y = nx, ny
}
