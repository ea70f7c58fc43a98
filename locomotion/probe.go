package locomotion

// Anchor is a grabbable ledge. Position is where the body centre rests when
// standing on top of it.
type Anchor struct {
	Position Vec2
}

// ProbeResult is one snapshot of environment contact.
type ProbeResult struct {
	TouchingWallLeft  bool
	TouchingWallRight bool
	// LastWallDirection points away from the touched wall: +1 for a wall on
	// the left, -1 for a wall on the right, 0 without contact.
	LastWallDirection int
	Grounded          bool
	OnClimbableRoof   bool
	Ledge             *Anchor
}

// TouchingWall reports contact on either side.
func (r ProbeResult) TouchingWall() bool {
	return r.TouchingWallLeft || r.TouchingWallRight
}

// Prober casts the probe volumes around a body position. direction is the
// sign of the horizontal input; 0 disables the ledge probe.
type Prober interface {
	Probe(position Vec2, direction int) ProbeResult
}

func wallDirection(r ProbeResult) int {
	switch {
	case r.TouchingWallLeft:
		return 1
	case r.TouchingWallRight:
		return -1
	}
	return 0
}
