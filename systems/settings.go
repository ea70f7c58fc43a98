package systems

import (
	"fmt"
	"log"

	"github.com/automoto/ledgehop/components"
	cfg "github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/systems/factory"
	"github.com/automoto/ledgehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// statusFrames is how long a reload message stays on the HUD.
const statusFrames = 180

// GetOrCreateSettings returns the settings singleton, creating it with
// defaults when the scene did not.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		factory.CreateSettings(e, SettingsFromSaved(nil, ""))
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// UpdateSettings handles the overlay toggles and tuning reload.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if settings.StatusFrames > 0 {
		settings.StatusFrames--
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := components.PlayerInput.Get(playerEntry)

	changed := false
	if GetPlayerAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetPlayerAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		changed = true
	}
	if changed {
		SaveCurrentSettings(settings, currentLevelName(e))
	}

	if GetPlayerAction(input, cfg.ActionReloadTuning).JustPressed {
		reloadTuning(e, settings)
	}
}

// reloadTuning rereads the tuning file and respawns the player with it.
// A failed reload keeps the running tuning.
func reloadTuning(e *ecs.ECS, settings *components.SettingsData) {
	settings.StatusFrames = statusFrames
	if settings.TuningPath == "" {
		settings.Status = "no tuning file (-tuning)"
		return
	}

	tuning, err := cfg.LoadTuning(settings.TuningPath)
	if err != nil {
		log.Printf("[tuning] reload failed: %v", err)
		settings.Status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	tuning.Apply()

	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	// Cell size is fixed once the space exists; only the scale follows the file
	world.Scale.PixelsPerUnit = cfg.Physics.PixelsPerUnit

	if playerEntry, ok := tags.Player.First(e.World); ok {
		factory.RespawnPlayer(playerEntry, world.World)
	}

	log.Printf("[tuning] reloaded %s", settings.TuningPath)
	settings.Status = "tuning reloaded"
}

func currentLevelName(e *ecs.ECS) string {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return ""
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return ""
	}
	return level.CurrentLevel.Name
}
