package locomotion

import (
	"math"
	"testing"
)

var ledgeAnchor = Anchor{Position: Vec2{X: 10, Y: 5}}

// hangOnLedge puts a fresh controller on the test ledge, facing right.
func hangOnLedge(t *testing.T) (*Controller, *fakeBody, *world) {
	t.Helper()
	c, body, w := newTestController(t)
	anchor := ledgeAnchor
	w.result.Ledge = &anchor
	w.ledgeDir = 1

	tick(c, Input{Axis: 1})
	if c.State() != LedgeGrabbing {
		t.Fatalf("state = %s, want ledge_grabbing", c.State())
	}
	return c, body, w
}

func TestLedgeGrabSnapsToHangPosition(t *testing.T) {
	c, body, _ := hangOnLedge(t)

	off := c.cfg.LedgeHangOffset
	want := Vec2{X: ledgeAnchor.Position.X - off.X, Y: ledgeAnchor.Position.Y - off.Y}
	if body.pos != want {
		t.Errorf("hang position = %+v, want %+v", body.pos, want)
	}
	if body.vel != (Vec2{}) || body.gravity != 0 {
		t.Errorf("hanging body moves: vel %+v gravity %v", body.vel, body.gravity)
	}
	if c.Machine().LedgeFacing != 1 {
		t.Errorf("ledge facing = %d, want 1", c.Machine().LedgeFacing)
	}
}

func TestLedgeGrabHoldsWithoutInput(t *testing.T) {
	c, body, _ := hangOnLedge(t)
	for i := 0; i < 10; i++ {
		tick(c, Input{})
	}
	if c.State() != LedgeGrabbing {
		t.Errorf("state = %s, want ledge_grabbing", c.State())
	}
	if body.vel != (Vec2{}) {
		t.Errorf("velocity = %+v while hanging", body.vel)
	}
}

func TestLedgeReleaseOnReversal(t *testing.T) {
	c, body, _ := hangOnLedge(t)

	tick(c, Input{Axis: -1})
	if c.State() != Falling {
		t.Fatalf("state = %s, want falling", c.State())
	}
	if body.gravity != c.cfg.BaseGravityScale {
		t.Errorf("gravity scale = %v after release, want %v", body.gravity, c.cfg.BaseGravityScale)
	}

	// The release lockout keeps the same ledge from catching the body again.
	tick(c, Input{Axis: 1})
	if c.State() == LedgeGrabbing {
		t.Error("regrabbed the ledge inside the release delay")
	}
}

func TestLedgeDescendRelease(t *testing.T) {
	c, body, _ := hangOnLedge(t)

	c.Update(Input{DescendPressed: true}, dt)
	if c.State() != LedgeGrabbing {
		t.Fatalf("descend released before the physics tick")
	}
	c.FixedUpdate(dt)

	if c.State() != Falling {
		t.Errorf("state = %s, want falling", c.State())
	}
	if body.gravity != c.cfg.BaseGravityScale {
		t.Errorf("gravity scale = %v, want %v", body.gravity, c.cfg.BaseGravityScale)
	}
	if c.Machine().DescendQueued {
		t.Error("descend request not consumed")
	}
}

func TestLedgeGrabPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller, body *fakeBody, w *world)
		axis  float64
	}{
		{
			name:  "no direction",
			setup: func(*Controller, *fakeBody, *world) {},
			axis:  0,
		},
		{
			name:  "facing away",
			setup: func(*Controller, *fakeBody, *world) {},
			axis:  -1,
		},
		{
			name:  "rising fast",
			setup: func(_ *Controller, body *fakeBody, _ *world) { body.vel.Y = 5 },
			axis:  1,
		},
		{
			name:  "grounded",
			setup: func(_ *Controller, _ *fakeBody, w *world) { w.result.Grounded = true },
			axis:  1,
		},
		{
			name: "wall sliding",
			setup: func(c *Controller, _ *fakeBody, _ *world) {
				c.m.State = WallSliding
			},
			axis: 1,
		},
		{
			name: "release lockout",
			setup: func(c *Controller, _ *fakeBody, _ *world) {
				c.timers.Set(TimerLedgeRelease, 1)
			},
			axis: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, body, w := newTestController(t)
			anchor := ledgeAnchor
			w.result.Ledge = &anchor
			w.ledgeDir = 1
			tt.setup(c, body, w)

			tick(c, Input{Axis: tt.axis})
			if c.State() == LedgeGrabbing {
				t.Error("grabbed the ledge")
			}
		})
	}
}

func TestLedgeClimbReachesAnchor(t *testing.T) {
	steps := []float64{0.001, 1.0 / 144, 1.0 / 60, 0.05, 0.3, 1}

	for _, step := range steps {
		c, body, _ := hangOnLedge(t)
		start := body.pos

		c.Update(Input{JumpPressed: true, JumpHeld: true}, dt)
		if c.State() != LedgeClimbing || !c.Climbing() {
			t.Fatalf("step %v: climb did not start, state %s", step, c.State())
		}
		if body.simulated {
			t.Fatalf("step %v: body still simulated while climbing", step)
		}

		for i := 0; c.Climbing(); i++ {
			if i > 10000 {
				t.Fatalf("step %v: climb never finished", step)
			}
			climb := c.Climb()
			// Reversing and pressing jump again must not cancel the climb.
			c.Update(Input{Axis: -1, JumpPressed: true}, step)
			if !c.Climbing() {
				break
			}
			c.FixedUpdate(dt)

			if body.vel != (Vec2{}) {
				t.Fatalf("step %v: velocity %+v during climb", step, body.vel)
			}
			switch climb.Phase {
			case ClimbRise:
				if body.pos.X != start.X {
					t.Fatalf("step %v: rise moved sideways to %v", step, body.pos.X)
				}
			case ClimbTraverse:
				if body.pos.Y != ledgeAnchor.Position.Y {
					t.Fatalf("step %v: traverse left anchor height: %v", step, body.pos.Y)
				}
			}
		}

		if body.pos != ledgeAnchor.Position {
			t.Errorf("step %v: final position %+v, want exactly %+v", step, body.pos, ledgeAnchor.Position)
		}
		if c.State() != Grounded {
			t.Errorf("step %v: state = %s, want grounded", step, c.State())
		}
		if !body.simulated || body.gravity != c.cfg.BaseGravityScale {
			t.Errorf("step %v: body not handed back: simulated %v gravity %v", step, body.simulated, body.gravity)
		}
	}
}

func TestLedgeClimbPhases(t *testing.T) {
	start := Vec2{X: 0, Y: 0}
	end := Vec2{X: 2, Y: 4}
	l := NewLedgeClimb(start, end, 1, 1)

	pos, done := l.Advance(0.25)
	if done || pos.X != 0 || pos.Y <= 0 || pos.Y >= 4 {
		t.Errorf("mid rise = %+v done=%v", pos, done)
	}

	pos, done = l.Advance(0.25)
	if done || pos != l.Mid {
		t.Errorf("end of rise = %+v, want mid %+v", pos, l.Mid)
	}
	if l.Phase != ClimbTraverse {
		t.Errorf("phase = %d, want traverse", l.Phase)
	}

	pos, done = l.Advance(0.25)
	if done || pos.Y != 4 || pos.X <= 0 || pos.X >= 2 {
		t.Errorf("mid traverse = %+v done=%v", pos, done)
	}

	pos, done = l.Advance(0.25)
	if !done || pos != end {
		t.Errorf("finish = %+v done=%v, want %+v", pos, done, end)
	}
	if l.Progress() != 1 {
		t.Errorf("progress = %v, want 1", l.Progress())
	}
}

func TestLedgeClimbZeroDuration(t *testing.T) {
	end := Vec2{X: 3, Y: 7}
	l := NewLedgeClimb(Vec2{}, end, -1, 0)

	pos, done := l.Advance(0.016)
	if !done || pos != end {
		t.Errorf("instant climb = %+v done=%v, want %+v", pos, done, end)
	}
}

func TestLedgeClimbCarriesTimeIntoTraverse(t *testing.T) {
	start := Vec2{X: 0, Y: 0}
	end := Vec2{X: 2, Y: 4}
	l := NewLedgeClimb(start, end, 1, 0.5)

	tests := []struct {
		name string
		want Vec2
		done bool
	}{
		{name: "rising", want: Vec2{X: 0, Y: 3.2}},
		// 0.15s past the rise end goes straight into the traverse.
		{name: "overflow traverses", want: Vec2{X: 1.2, Y: 4}},
		{name: "on time", want: end, done: true},
	}

	for _, tt := range tests {
		pos, done := l.Advance(0.2)
		if done != tt.done {
			t.Fatalf("%s: done = %v, want %v (elapsed %v)", tt.name, done, tt.done, l.Elapsed)
		}
		if math.Abs(pos.X-tt.want.X) > 1e-6 || math.Abs(pos.Y-tt.want.Y) > 1e-6 {
			t.Errorf("%s: pos = %+v, want %+v", tt.name, pos, tt.want)
		}
	}
	if math.Abs(l.Elapsed-0.6) > 1e-9 {
		t.Errorf("finished at %v, want the first step past the duration", l.Elapsed)
	}
}
