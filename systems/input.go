package systems

import (
	"math"
	"strings"

	"github.com/automoto/ledgehop/components"
	cfg "github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps an action to keyboard keys and standard gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the device mapping for every action.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDescend: {
		Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionWalk: {
		Keys:                   []ebiten.Key{ebiten.KeyControlLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	cfg.ActionSprint: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionDebug: {
		Keys:                   []ebiten.Key{ebiten.KeyF1},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionToggleHUD: {
		Keys: []ebiten.Key{ebiten.KeyF2},
	},
	cfg.ActionReloadTuning: {
		Keys: []ebiten.Key{ebiten.KeyF5},
	},
	cfg.ActionReset: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard and gamepads into every PlayerInputData.
// Must run BEFORE UpdateLocomotion in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		updatePlayerInputData(components.PlayerInput.Get(entry), gamepadIDs)
	})
}

func updatePlayerInputData(input *components.PlayerInputData, gamepads []ebiten.GamepadID) {
	// Swap buffers: current becomes previous, then zero out current
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.CurrentInput[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	analog, analogGpID, ok := getAnalogAxis(gamepads)
	if ok {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	input.Axis = horizontalAxis(
		input.CurrentInput[cfg.ActionMoveLeft],
		input.CurrentInput[cfg.ActionMoveRight],
		analog,
	)

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.InputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.InputMethod = components.InputKeyboard
	}
}

// horizontalAxis merges digital directions with an analog value that has
// already passed the deadzone. Analog wins when present.
func horizontalAxis(left, right bool, analog float64) float64 {
	if analog != 0 {
		return max(-1, min(1, analog))
	}
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}

// getAnalogAxis returns the strongest left stick deflection past the deadzone.
func getAnalogAxis(gamepads []ebiten.GamepadID) (value float64, activeGpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h > -deadzone && h < deadzone {
			continue
		}
		if !ok || math.Abs(h) > math.Abs(value) {
			value, activeGpID, ok = h, gpID, true
		}
	}
	return
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

// GetPlayerAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// LocomotionInput samples the controller input from a player's actions.
func LocomotionInput(input *components.PlayerInputData) locomotion.Input {
	jump := GetPlayerAction(input, cfg.ActionJump)
	return locomotion.Input{
		Axis:           input.Axis,
		JumpPressed:    jump.JustPressed,
		JumpHeld:       jump.Pressed,
		JumpReleased:   jump.JustReleased,
		DescendPressed: GetPlayerAction(input, cfg.ActionDescend).JustPressed,
		Walk:           input.CurrentInput[cfg.ActionWalk],
		Sprint:         input.CurrentInput[cfg.ActionSprint],
	}
}
