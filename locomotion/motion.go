package locomotion

import "math"

// integrate runs the per-state velocity writes for the resolved state.
func (c *Controller) integrate(dt float64) {
	switch c.m.State {
	case Grounded, Jumping, Falling:
		c.run()
	case WallSliding:
		c.wallSlide(dt)
		c.run()
	case WallJumping, RoofJumping:
		// The jump impulse owns the velocity until the override runs out.
	case RoofClimbing:
		c.body.SetVelocity(Vec2{X: c.input.Axis * c.moveSpeed()})
		c.body.SetGravityScale(0)
	case LedgeGrabbing, LedgeClimbing:
		c.holdStill()
	}
}

func (c *Controller) holdStill() {
	c.body.SetVelocity(Vec2{})
	c.body.SetGravityScale(0)
}

func (c *Controller) run() {
	v := c.body.Velocity()
	v.X = c.input.Axis * c.moveSpeed()
	c.body.SetVelocity(v)
}

func (c *Controller) moveSpeed() float64 {
	if c.m.State == RoofClimbing {
		return c.cfg.ClimbSpeed
	}
	return c.runSpeed()
}

// runSpeed picks the speed tier from the modifiers. Without a direction the
// tier is irrelevant and the plain run speed is used.
func (c *Controller) runSpeed() float64 {
	if c.input.direction() == 0 {
		return c.cfg.RunSpeed
	}
	switch {
	case c.input.Sprint:
		return c.cfg.SprintSpeed
	case c.input.Walk:
		return c.cfg.WalkSpeed
	}
	return c.cfg.RunSpeed
}

// pressingIntoWall reports input pushing toward the touched wall.
func (c *Controller) pressingIntoWall() bool {
	dir := c.input.direction()
	return (c.probes.TouchingWallLeft && dir < 0) || (c.probes.TouchingWallRight && dir > 0)
}

// wallFrozen reports the latch and stick phases of a wall slide.
func (c *Controller) wallFrozen() bool {
	return c.m.State == WallSliding &&
		(c.timers.Active(TimerWallLatch) || c.timers.Active(TimerWallStick))
}

func (c *Controller) wallSlide(dt float64) {
	v := c.body.Velocity()

	switch {
	case c.pressingIntoWall():
		c.timers.Set(TimerWallStick, c.cfg.WallStickTime)
		c.m.WallSlideTimer = 0
		v.Y = 0
	case c.timers.Active(TimerWallLatch):
		v.Y = 0
	case c.timers.Active(TimerWallStick):
		c.m.WallSlideTimer = 0
		v.Y = 0
	default:
		c.m.WallSlideTimer += dt
		speed := lerp(c.cfg.WallSlideMinSpeed, c.cfg.MaxFallSpeed, c.m.WallSlideTimer*c.cfg.WallSlideAcceleration)
		v.Y = -math.Min(speed, c.cfg.MaxFallSpeed)
	}

	// Frozen phases hang without backend gravity.
	if c.wallFrozen() {
		c.body.SetGravityScale(0)
	} else {
		c.body.SetGravityScale(c.cfg.BaseGravityScale)
	}
	c.body.SetVelocity(v)
}

// applyGravityControl adds the fall and low-jump accelerations on top of
// the backend's gravity.
func (c *Controller) applyGravityControl(dt float64) {
	switch c.m.State {
	case LedgeGrabbing, LedgeClimbing, RoofClimbing:
		return
	}
	if c.climb != nil || c.wallFrozen() {
		return
	}

	v := c.body.Velocity()
	switch {
	case v.Y < 0:
		v.Y += c.cfg.Gravity * (c.cfg.FallMultiplier - 1) * dt
	case v.Y > 0 && !c.input.JumpHeld:
		v.Y += c.cfg.Gravity * (c.cfg.LowJumpMultiplier - 1) * dt
	default:
		return
	}
	c.body.SetVelocity(v)
}

// handleJump dispatches a jump press by current state and contact.
func (c *Controller) handleJump() {
	switch {
	case c.m.State == LedgeGrabbing:
		c.startClimb()
	case c.m.State == RoofClimbing:
		c.roofJump()
	case c.probes.TouchingWall() && !c.probes.Grounded:
		c.wallJump()
	case c.probes.Grounded || c.timers.Active(TimerCoyote):
		c.groundJump()
	default:
		c.timers.Set(TimerJumpBuffer, c.cfg.JumpBufferTime)
	}
}

func (c *Controller) groundJump() {
	v := c.body.Velocity()
	v.Y = c.cfg.JumpSpeed
	c.body.SetVelocity(v)

	c.timers.Clear(TimerJumpBuffer)
	c.timers.Clear(TimerCoyote)
	// The body leaves the ground now, not at the next probe.
	c.probes.Grounded = false
	c.m.Launching = true

	c.setState(Jumping)
	c.m.Sustaining = c.cfg.JumpHoldTime > 0
	c.m.SustainTimer = c.cfg.JumpHoldTime
}

// sustainJump keeps the take-off speed while the button stays held.
func (c *Controller) sustainJump(dt float64) {
	if !c.m.Sustaining {
		return
	}
	if c.m.State != Jumping || c.m.SustainTimer <= 0 {
		c.m.Sustaining = false
		return
	}
	v := c.body.Velocity()
	v.Y = c.cfg.JumpSpeed
	c.body.SetVelocity(v)
	c.m.SustainTimer -= dt
}

func (c *Controller) wallJump() {
	dir := c.probes.LastWallDirection
	if dir == 0 {
		return
	}
	c.body.SetVelocity(Vec2{
		X: float64(dir) * c.cfg.WallJumpPush,
		Y: c.cfg.JumpSpeed * c.cfg.WallJumpLiftMultiplier,
	})
	c.timers.Set(TimerWallJumpOverride, c.cfg.WallJumpOverrideTime)
	c.timers.Clear(TimerCoyote)
	c.m.Facing = dir
	c.setState(WallJumping)
}

func (c *Controller) roofJump() {
	c.body.SetVelocity(Vec2{
		X: c.input.Axis * c.runSpeed(),
		Y: -c.cfg.RoofJumpImpulse,
	})
	c.body.SetGravityScale(c.cfg.BaseGravityScale)
	c.timers.Set(TimerRoofJumpOverride, c.cfg.RoofJumpOverrideTime)
	c.setState(RoofJumping)
}
