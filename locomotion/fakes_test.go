package locomotion

import (
	"math"
	"testing"

	"github.com/automoto/ledgehop/config"
)

const dt = 0.02

// fakeBody records writes without integrating anything.
type fakeBody struct {
	vel       Vec2
	pos       Vec2
	gravity   float64
	simulated bool
}

func (b *fakeBody) Velocity() Vec2            { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2)        { b.vel = v }
func (b *fakeBody) Position() Vec2            { return b.pos }
func (b *fakeBody) SetPosition(p Vec2)        { b.pos = p }
func (b *fakeBody) GravityScale() float64     { return b.gravity }
func (b *fakeBody) SetGravityScale(s float64) { b.gravity = s }
func (b *fakeBody) SetSimulated(on bool)      { b.simulated = on }

// world is a scripted prober: tests flip its fields between ticks.
type world struct {
	result ProbeResult
	// ledgeDir restricts the ledge hit to one probe direction (0 = any).
	ledgeDir int
	lastDir  int
}

func (w *world) Probe(_ Vec2, direction int) ProbeResult {
	w.lastDir = direction
	r := w.result
	if direction == 0 || (w.ledgeDir != 0 && direction != w.ledgeDir) {
		r.Ledge = nil
	}
	return r
}

func testConfig() config.MovementConfig {
	return config.DefaultMovement()
}

func newTestController(t *testing.T) (*Controller, *fakeBody, *world) {
	t.Helper()
	body := &fakeBody{simulated: true}
	w := &world{}
	c := New(testConfig(), body, w)
	return c, body, w
}

// tick runs one variable-rate and one physics step.
func tick(c *Controller, in Input) {
	c.Update(in, dt)
	c.FixedUpdate(dt)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
