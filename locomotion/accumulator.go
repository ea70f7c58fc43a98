package locomotion

// Accumulator turns variable frame deltas into whole fixed steps.
type Accumulator struct {
	Step    float64
	pending float64
}

// maxSteps bounds catch-up after a long stall.
const maxSteps = 8

// Advance adds a frame delta and returns how many fixed steps are due.
func (a *Accumulator) Advance(dt float64) int {
	if a.Step <= 0 {
		return 0
	}
	a.pending += dt
	n := 0
	for a.pending >= a.Step && n < maxSteps {
		a.pending -= a.Step
		n++
	}
	if n == maxSteps {
		a.pending = 0
	}
	return n
}
