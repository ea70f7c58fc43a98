// Package locomotion implements the movement state machine of a single
// platformer body: run, jump, wall slide and wall jump, roof climbing and
// ledge grab/climb, driven by an input snapshot and environment probes.
//
// The host calls Update once per rendered frame and FixedUpdate once per
// physics step, always from the same goroutine.
package locomotion

import (
	"log"

	"github.com/automoto/ledgehop/config"
)

// Machine is the per-body state carried from tick to tick.
type Machine struct {
	State  State
	Facing int // -1 or +1, last non-zero input direction

	LedgeFacing int // Input direction at the moment of the grab
	LedgeAnchor Anchor

	WallSlideTimer float64 // Time spent in the accelerating slide phase

	// Held-jump sustain after a grounded jump
	Sustaining    bool
	SustainTimer  float64
	DescendQueued bool

	// A grounded jump fired and the body has not been stepped since, so the
	// ground probe still overlaps the floor it is leaving.
	Launching bool
}

// StateChangeFunc observes transitions.
type StateChangeFunc func(from, to State)

// Controller drives one Body.
type Controller struct {
	cfg    config.MovementConfig
	body   Body
	prober Prober

	m      Machine
	timers TimerBank
	input  Input
	probes ProbeResult
	climb  *LedgeClimb

	hooks []StateChangeFunc
}

// New returns a controller in the Falling state, facing right.
func New(cfg config.MovementConfig, body Body, prober Prober) *Controller {
	c := &Controller{
		cfg:    cfg,
		body:   body,
		prober: prober,
		m: Machine{
			State:  Falling,
			Facing: config.DirectionRight,
		},
	}
	body.SetGravityScale(cfg.BaseGravityScale)
	return c
}

// OnStateChange registers fn to run after every transition.
func (c *Controller) OnStateChange(fn StateChangeFunc) {
	c.hooks = append(c.hooks, fn)
}

// State is the state resolved by the last physics tick.
func (c *Controller) State() State { return c.m.State }

// Facing is the last non-zero horizontal input direction.
func (c *Controller) Facing() int { return c.m.Facing }

// Probes returns the snapshot from the last variable-rate tick.
func (c *Controller) Probes() ProbeResult { return c.probes }

// Timers returns a copy of the timer bank.
func (c *Controller) Timers() TimerBank { return c.timers }

// Body is the controlled body.
func (c *Controller) Body() Body { return c.body }

// Machine returns a copy of the state machine fields.
func (c *Controller) Machine() Machine { return c.m }

// Input is the input sampled by the last Update.
func (c *Controller) Input() Input { return c.input }

// Settings returns the movement tuning the controller was built with.
func (c *Controller) Settings() config.MovementConfig { return c.cfg }

// Climbing reports whether a ledge climb owns the body.
func (c *Controller) Climbing() bool { return c.climb != nil }

// Update is the variable-rate tick: it samples input, probes the
// environment, handles button edges and advances a running ledge climb.
func (c *Controller) Update(in Input, dt float64) {
	c.input = in
	if dir := in.direction(); dir != 0 {
		c.m.Facing = dir
	}

	if c.climb != nil {
		c.advanceClimb(dt)
		return
	}

	c.probe()

	if in.JumpPressed {
		c.handleJump()
	}
	if in.JumpReleased || !in.JumpHeld {
		c.m.Sustaining = false
	}
	c.sustainJump(dt)

	if in.DescendPressed && c.m.State == LedgeGrabbing {
		c.m.DescendQueued = true
	}
}

func (c *Controller) probe() {
	c.probes = c.prober.Probe(c.body.Position(), c.input.direction())
	c.probes.LastWallDirection = wallDirection(c.probes)
	if c.m.Launching {
		c.probes.Grounded = false
	}

	// First contact with a wall arms the latch
	if c.probes.TouchingWall() && c.m.State != WallSliding {
		c.timers.Set(TimerWallLatch, c.cfg.WallLatchTime)
	}
}

// FixedUpdate is the physics tick: timers, transition, per-state
// integration and gravity control.
func (c *Controller) FixedUpdate(dt float64) {
	c.timers.Tick(dt)

	if c.climb != nil {
		c.holdStill()
		return
	}

	if c.m.DescendQueued {
		c.m.DescendQueued = false
		if c.m.State == LedgeGrabbing {
			c.releaseLedge()
			return
		}
	}

	c.setState(c.transition())
	c.integrate(dt)
	c.applyGravityControl(dt)
	c.m.Launching = false
}

func (c *Controller) setState(next State) {
	prev := c.m.State
	if prev == next {
		return
	}
	c.m.State = next
	if next != Jumping {
		c.m.Sustaining = false
	}
	switch next {
	case RoofClimbing, LedgeGrabbing, LedgeClimbing, WallSliding:
		// These states manage the gravity scale themselves.
	default:
		c.body.SetGravityScale(c.cfg.BaseGravityScale)
	}
	if c.cfg.LogTransitions {
		log.Printf("[locomotion] %s -> %s", prev, next)
	}
	for _, fn := range c.hooks {
		fn(prev, next)
	}
}
