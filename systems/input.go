package systems

import (
	"math"
	"strings"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var polled [cfg.ActionCount]bool

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	stick, stickGpID := getAnalogStick(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				polled[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					polled[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge the vertical stick into menu navigation
	if stick.Y < -cfg.Input.AnalogDeadzone {
		polled[cfg.ActionMenuUp] = true
	}
	if stick.Y > cfg.Input.AnalogDeadzone {
		polled[cfg.ActionMenuDown] = true
	}
	if math.Abs(stick.X) > cfg.Input.AnalogDeadzone || math.Abs(stick.Y) > cfg.Input.AnalogDeadzone {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	latchInput(input, polled)
	input.MoveAxis = moveAxis(
		input.Current[cfg.ActionMoveLeft],
		input.Current[cfg.ActionMoveRight],
		stick.X,
		cfg.Input.AnalogDeadzone,
	)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// latchInput shifts the polled state into the buffers. Buttons already
// held on a scene's first poll count as held, not as fresh presses, so an
// Escape or A carried over from the previous scene fires nothing.
func latchInput(input *components.InputData, polled [cfg.ActionCount]bool) {
	if input.Primed {
		input.Previous = input.Current
	} else {
		input.Previous = polled
		input.Primed = true
	}
	input.Current = polled
}

// moveAxis combines digital directions with the analog stick. The stick
// wins once it leaves the deadzone, rescaled so the edge of the deadzone
// reads as zero.
func moveAxis(left, right bool, stickX, deadzone float64) float64 {
	if math.Abs(stickX) > deadzone && deadzone < 1 {
		v := (math.Abs(stickX) - deadzone) / (1 - deadzone)
		return math.Copysign(math.Min(v, 1), stickX)
	}
	var axis float64
	if left {
		axis--
	}
	if right {
		axis++
	}
	return axis
}

type stickState struct {
	X, Y float64
}

// getAnalogStick returns the left stick of the gamepad pushed furthest.
func getAnalogStick(gamepads []ebiten.GamepadID) (stickState, ebiten.GamepadID) {
	var best stickState
	var bestID ebiten.GamepadID
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		s := stickState{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if math.Hypot(s.X, s.Y) > math.Hypot(best.X, best.Y) {
			best, bestID = s, gpID
		}
	}
	return best, bestID
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
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
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
