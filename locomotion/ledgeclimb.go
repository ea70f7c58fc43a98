package locomotion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ClimbPhase is the step of a ledge climb.
type ClimbPhase int

const (
	ClimbRise     ClimbPhase = iota // Straight up to the anchor height
	ClimbTraverse                   // Across onto the anchor
	ClimbDone
)

// LedgeClimb moves a body from its hang position onto a ledge anchor in two
// linear phases of equal length. Position is written directly; the body is
// not simulated while the climb runs.
type LedgeClimb struct {
	Start  Vec2
	Mid    Vec2
	End    Vec2
	Facing int

	Phase    ClimbPhase
	Elapsed  float64
	Duration float64

	// Phase progress runs 0 to 1; positions are lerped in float64 since
	// gween works in float32.
	rise     *gween.Tween
	traverse *gween.Tween
}

// NewLedgeClimb plans a climb from start to end taking duration seconds.
func NewLedgeClimb(start, end Vec2, facing int, duration float64) *LedgeClimb {
	half := float32(duration / 2)
	return &LedgeClimb{
		Start:    start,
		Mid:      Vec2{X: start.X, Y: end.Y},
		End:      end,
		Facing:   facing,
		Duration: duration,
		rise:     gween.New(0, 1, half, ease.Linear),
		traverse: gween.New(0, 1, half, ease.Linear),
	}
}

// Advance moves the climb forward by dt and returns the body position. done
// is true exactly once, with pos equal to End. Time left over when the rise
// ends carries into the traverse.
func (l *LedgeClimb) Advance(dt float64) (pos Vec2, done bool) {
	l.Elapsed += dt
	if l.Duration <= 0 {
		return l.finish()
	}

	if l.Phase == ClimbRise {
		t, finished := l.rise.Update(float32(dt))
		if !finished {
			return Vec2{X: l.Start.X, Y: lerp(l.Start.Y, l.End.Y, float64(t))}, false
		}
		l.Phase = ClimbTraverse
		if l.rise.Overflow <= 0 {
			return l.Mid, false
		}
		dt = float64(l.rise.Overflow)
	}

	if l.Phase == ClimbTraverse {
		t, finished := l.traverse.Update(float32(dt))
		if finished {
			return l.finish()
		}
		return Vec2{X: lerp(l.Mid.X, l.End.X, float64(t)), Y: l.End.Y}, false
	}
	return l.End, false
}

func (l *LedgeClimb) finish() (Vec2, bool) {
	l.Phase = ClimbDone
	return l.End, true
}

// Progress is the fraction of the climb elapsed, in [0, 1].
func (l *LedgeClimb) Progress() float64 {
	if l.Duration <= 0 || l.Phase == ClimbDone {
		return 1
	}
	return lerp(0, 1, l.Elapsed/l.Duration)
}

// Climb returns the running ledge climb, or nil.
func (c *Controller) Climb() *LedgeClimb { return c.climb }

func (c *Controller) startClimb() {
	c.climb = NewLedgeClimb(c.body.Position(), c.m.LedgeAnchor.Position, c.m.LedgeFacing, c.cfg.LedgeClimbDuration)
	c.body.SetSimulated(false)
	c.holdStill()
	c.setState(LedgeClimbing)
}

// advanceClimb runs from the variable-rate tick until the climb completes,
// then hands the body back to the state machine standing on the ledge.
func (c *Controller) advanceClimb(dt float64) {
	pos, done := c.climb.Advance(dt)
	c.body.SetPosition(pos)
	if !done {
		return
	}
	c.climb = nil
	c.body.SetVelocity(Vec2{})
	c.body.SetGravityScale(c.cfg.BaseGravityScale)
	c.body.SetSimulated(true)
	c.setState(Grounded)
	c.probe()
}
