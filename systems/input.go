package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard and gamepads into the InputData singleton.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into stepping
	if analogLeft {
		input.Current[cfg.ActionPrevious] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionNext] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdatePointerInput polls the wheel, the mouse and the first touch into the PointerInputData singleton.
func UpdatePointerInput(ecs *ecs.ECS) {
	p := getOrCreatePointerInput(ecs)
	input := getOrCreateInput(ecs)

	p.Pressed, p.Released, p.Moved = false, false, false

	_, p.WheelY = ebiten.Wheel()
	if p.WheelY != 0 {
		input.LastInputMethod = components.InputMouse
	}

	if p.UsingTouch {
		if inpututil.IsTouchJustReleased(p.TouchID) {
			p.Released = true
			p.Held = false
			p.UsingTouch = false
			return
		}
		x, y := ebiten.TouchPosition(p.TouchID)
		p.SetPosition(x, y)
		return
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		p.TouchID = touchIDs[0]
		p.UsingTouch = true
		p.Pressed = true
		p.Held = true
		x, y := ebiten.TouchPosition(p.TouchID)
		p.X, p.Y = float64(x), float64(y)
		input.LastInputMethod = components.InputTouch
		return
	}

	x, y := ebiten.CursorPosition()
	p.SetPosition(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.Pressed = true
		p.Held = true
		input.LastInputMethod = components.InputMouse
	}
	if p.Held && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.Released = true
		p.Held = false
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the horizontal left stick of all gamepads against the deadzone
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// getOrCreatePointerInput returns the singleton PointerInput component, creating if needed
func getOrCreatePointerInput(ecs *ecs.ECS) *components.PointerInputData {
	entry, ok := components.PointerInput.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.PointerInput))
	}
	return components.PointerInput.Get(entry)
}

// GetInput returns the polled action state.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetPointer returns the pointer state polled this frame.
func GetPointer(ecs *ecs.ECS) components.PointerInputData {
	return *getOrCreatePointerInput(ecs)
}
