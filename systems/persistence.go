package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/ledgehop/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	ShowHUD    bool   `json:"showHud"`
	Fullscreen bool   `json:"fullscreen"`
	LastLevel  string `json:"lastLevel"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ledgehop",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the overlay toggles and the active level.
func SaveCurrentSettings(s *components.SettingsData, level string) {
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		ShowHUD:    s.ShowHUD,
		Fullscreen: ebiten.IsFullscreen(),
		LastLevel:  level,
	})
}

// ApplySavedSettingsGlobal applies window settings before the scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SettingsFromSaved builds the settings component, falling back to the HUD
// on and the debug overlay off.
func SettingsFromSaved(saved *SavedSettings, tuningPath string) components.SettingsData {
	s := components.SettingsData{
		ShowHUD:    true,
		TuningPath: tuningPath,
	}
	if saved != nil {
		s.Debug = saved.Debug
		s.ShowHUD = saved.ShowHUD
	}
	return s
}
