package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = iota

type SettingsData struct {
	Debug      bool // Probe volumes, timers and transition history
	ShowHUD    bool
	TuningPath string

	// Last tuning reload result, shown on the HUD for StatusFrames frames
	Status       string
	StatusFrames int
}

var Settings = donburi.NewComponentType[SettingsData]()
