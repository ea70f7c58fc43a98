package locomotion

// State is the locomotion mode of the controlled body. Exactly one is active
// after every physics tick.
type State int

const (
	Grounded State = iota
	Jumping
	Falling
	WallSliding
	WallJumping
	RoofClimbing
	RoofJumping
	LedgeGrabbing
	LedgeClimbing
	stateCount
)

var stateNames = [stateCount]string{
	Grounded:      "grounded",
	Jumping:       "jumping",
	Falling:       "falling",
	WallSliding:   "wall_sliding",
	WallJumping:   "wall_jumping",
	RoofClimbing:  "roof_climbing",
	RoofJumping:   "roof_jumping",
	LedgeGrabbing: "ledge_grabbing",
	LedgeClimbing: "ledge_climbing",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "unknown"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= 0 && s < stateCount
}

// Airborne reports whether the state leaves the body without ground support.
func (s State) Airborne() bool {
	switch s {
	case Jumping, Falling, WallJumping, RoofJumping:
		return true
	}
	return false
}
