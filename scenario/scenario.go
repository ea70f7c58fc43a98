// Package scenario replays scripted input against a level without a window.
// A script is a list of steps, each holding an input for a number of frames;
// running it yields the controller's state transitions.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFrameRate is used when a script leaves frameRate out.
const DefaultFrameRate = 60

// Point is a feet position in map pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step holds one input for Frames frames. Jump and Descend are held for the
// whole step; their press edge lands on the first frame.
type Step struct {
	Frames  int     `yaml:"frames"`
	Axis    float64 `yaml:"axis"`
	Jump    bool    `yaml:"jump"`
	Descend bool    `yaml:"descend"`
	Walk    bool    `yaml:"walk"`
	Sprint  bool    `yaml:"sprint"`
}

type Script struct {
	Name      string  `yaml:"name"`
	Level     string  `yaml:"level"`
	Spawn     *Point  `yaml:"spawn"` // Defaults to the level's first spawn point
	FrameRate float64 `yaml:"frameRate"`
	Steps     []Step  `yaml:"steps"`
}

// Frames is the total length of the script.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// Validate reports every problem with the script at once.
func (s *Script) Validate() error {
	var errs []error
	if len(s.Steps) == 0 {
		errs = append(errs, errors.New("script has no steps"))
	}
	if s.FrameRate < 0 {
		errs = append(errs, fmt.Errorf("frameRate must not be negative, got %v", s.FrameRate))
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			errs = append(errs, fmt.Errorf("step %d: frames must be positive, got %d", i, st.Frames))
		}
		if st.Axis < -1 || st.Axis > 1 {
			errs = append(errs, fmt.Errorf("step %d: axis %v outside [-1, 1]", i, st.Axis))
		}
	}
	return errors.Join(errs...)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario yaml: %w", err)
	}
	if s.FrameRate == 0 {
		s.FrameRate = DefaultFrameRate
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
