package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDescend
	ActionWalk
	ActionSprint
	ActionDebug
	ActionReloadTuning
	ActionReset
	ActionToggleHUD
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input tuning. Device bindings live
// with the input system so this package stays free of ebiten.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
}
