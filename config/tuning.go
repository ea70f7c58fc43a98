package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning file. Sections left out of the
// file keep their current values.
type Tuning struct {
	Movement MovementConfig `yaml:"movement"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Probe    ProbeConfig    `yaml:"probe"`
}

// CurrentTuning snapshots the global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Movement: Movement,
		Physics:  Physics,
		Probe:    Probe,
	}
}

// ParseTuning decodes YAML on top of base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning yaml: %w", err)
	}
	if err := t.Movement.Validate(); err != nil {
		return base, fmt.Errorf("invalid movement tuning: %w", err)
	}
	if t.Physics.PixelsPerUnit <= 0 {
		return base, fmt.Errorf("invalid physics tuning: pixelsPerUnit must be positive, got %v", t.Physics.PixelsPerUnit)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file and merges it over the current globals.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), err
	}
	return ParseTuning(data, CurrentTuning())
}

// Apply installs t as the global configuration.
func (t Tuning) Apply() {
	Movement = t.Movement
	Physics = t.Physics
	Probe = t.Probe
}
