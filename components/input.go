package components

import (
	cfg "github.com/automoto/ledgehop/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed on demand by comparing
// frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
	Axis          float64     // Horizontal axis in [-1, 1]; analog stick or digital keys
	InputMethod   InputMethod // Most recently used input method
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
