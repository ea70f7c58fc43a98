package config

import (
	"errors"
	"fmt"
)

// Offset is a 2D offset in world units (Y up).
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MovementConfig contains every tunable of the locomotion controller.
// Speeds are in world units per second, durations in seconds.
type MovementConfig struct {
	// Run
	WalkSpeed   float64 `yaml:"walkSpeed"`
	RunSpeed    float64 `yaml:"runSpeed"`
	SprintSpeed float64 `yaml:"sprintSpeed"`
	ClimbSpeed  float64 `yaml:"climbSpeed"` // Horizontal speed while hanging from a roof

	// Jump
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	JumpHoldTime float64 `yaml:"jumpHoldTime"` // 0 disables the held-jump sustain

	// Gravity
	Gravity           float64 `yaml:"gravity"` // Negative, Y is up
	BaseGravityScale  float64 `yaml:"baseGravityScale"`
	FallMultiplier    float64 `yaml:"fallMultiplier"`
	LowJumpMultiplier float64 `yaml:"lowJumpMultiplier"`

	// Input forgiveness
	CoyoteTime     float64 `yaml:"coyoteTime"`
	JumpBufferTime float64 `yaml:"jumpBufferTime"`

	// Wall slide
	WallLatchTime         float64 `yaml:"wallLatchTime"`
	WallStickTime         float64 `yaml:"wallStickTime"`
	WallSlideMinSpeed     float64 `yaml:"wallSlideMinSpeed"`
	MaxFallSpeed          float64 `yaml:"maxFallSpeed"`
	WallSlideAcceleration float64 `yaml:"wallSlideAcceleration"`

	// Wall jump
	WallJumpPush           float64 `yaml:"wallJumpPush"`
	WallJumpLiftMultiplier float64 `yaml:"wallJumpLiftMultiplier"` // Vertical impulse = JumpSpeed * this
	WallJumpOverrideTime   float64 `yaml:"wallJumpOverrideTime"`

	// Roof
	RoofJumpImpulse      float64 `yaml:"roofJumpImpulse"` // Downward
	RoofJumpOverrideTime float64 `yaml:"roofJumpOverrideTime"`

	// Ledge
	LedgeGrabMaxRiseSpeed float64 `yaml:"ledgeGrabMaxRiseSpeed"`
	LedgeHangOffset       Offset  `yaml:"ledgeHangOffset"` // Hang position relative to the anchor, X mirrored by facing
	LedgeClimbDuration    float64 `yaml:"ledgeClimbDuration"`
	LedgeRegrabDelay      float64 `yaml:"ledgeRegrabDelay"`

	// Scheduling
	FixedTimestep float64 `yaml:"fixedTimestep"`

	LogTransitions bool `yaml:"logTransitions"`
}

// Validate reports values the controller cannot run with.
func (m MovementConfig) Validate() error {
	var errs []error
	if m.FixedTimestep <= 0 {
		errs = append(errs, fmt.Errorf("fixedTimestep must be positive, got %v", m.FixedTimestep))
	}
	if m.Gravity > 0 {
		errs = append(errs, fmt.Errorf("gravity must point down (<= 0), got %v", m.Gravity))
	}
	if m.MaxFallSpeed < m.WallSlideMinSpeed {
		errs = append(errs, fmt.Errorf("maxFallSpeed %v below wallSlideMinSpeed %v", m.MaxFallSpeed, m.WallSlideMinSpeed))
	}
	for name, v := range map[string]float64{
		"coyoteTime":           m.CoyoteTime,
		"jumpBufferTime":       m.JumpBufferTime,
		"jumpHoldTime":         m.JumpHoldTime,
		"wallLatchTime":        m.WallLatchTime,
		"wallStickTime":        m.WallStickTime,
		"wallJumpOverrideTime": m.WallJumpOverrideTime,
		"roofJumpOverrideTime": m.RoofJumpOverrideTime,
		"ledgeClimbDuration":   m.LedgeClimbDuration,
		"ledgeRegrabDelay":     m.LedgeRegrabDelay,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	return errors.Join(errs...)
}

// PhysicsConfig contains the resolv backend configuration
type PhysicsConfig struct {
	PixelsPerUnit    float64 `yaml:"pixelsPerUnit"`
	TerminalVelocity float64 `yaml:"terminalVelocity"` // Units per second
	CellSize         int     `yaml:"cellSize"`

	// Player collision box in pixels
	BodyWidth  float64 `yaml:"bodyWidth"`
	BodyHeight float64 `yaml:"bodyHeight"`
}

// ProbeConfig sizes the probe volumes in pixels
type ProbeConfig struct {
	GroundDepth float64 `yaml:"groundDepth"` // Height of the strip below the feet
	GroundInset float64 `yaml:"groundInset"` // Shrinks the ground strip horizontally so walls don't count
	WallReach   float64 `yaml:"wallReach"`
	WallInset   float64 `yaml:"wallInset"` // Shrinks the wall strips vertically so floors don't count
	RoofReach   float64 `yaml:"roofReach"`
	LedgeSize   float64 `yaml:"ledgeSize"`
	ChestHeight float64 `yaml:"chestHeight"` // Ledge probe centre above the body centre
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum horizontal speed (units/s) to update look-ahead
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Physics PhysicsConfig
var Probe ProbeConfig
var Camera CameraConfig

// Direction constants for facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Movement = DefaultMovement()

	Physics = PhysicsConfig{
		PixelsPerUnit:    16,
		TerminalVelocity: 20,
		CellSize:         16,
		BodyWidth:        14,
		BodyHeight:       30,
	}

	Probe = ProbeConfig{
		GroundDepth: 2,
		GroundInset: 2,
		WallReach:   2,
		WallInset:   4,
		RoofReach:   2,
		LedgeSize:   6,
		ChestHeight: 6,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      40,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}
}

// DefaultMovement returns the shipped movement tuning.
func DefaultMovement() MovementConfig {
	return MovementConfig{
		WalkSpeed:   3,
		RunSpeed:    6,
		SprintSpeed: 9,
		ClimbSpeed:  3,

		JumpSpeed:    16,
		JumpHoldTime: 0.2,

		Gravity:           -9.81,
		BaseGravityScale:  3,
		FallMultiplier:    4.5,
		LowJumpMultiplier: 6,

		CoyoteTime:     0.1,
		JumpBufferTime: 0.15,

		WallLatchTime:         0.2,
		WallStickTime:         1,
		WallSlideMinSpeed:     0.5,
		MaxFallSpeed:          10,
		WallSlideAcceleration: 5,

		WallJumpPush:           10,
		WallJumpLiftMultiplier: 1.6,
		WallJumpOverrideTime:   0.15,

		RoofJumpImpulse:      2,
		RoofJumpOverrideTime: 0.15,

		LedgeGrabMaxRiseSpeed: 0.5,
		LedgeHangOffset:       Offset{X: 1, Y: 1.5},
		LedgeClimbDuration:    0.4,
		LedgeRegrabDelay:      0.25,

		FixedTimestep: 0.02,
	}
}
