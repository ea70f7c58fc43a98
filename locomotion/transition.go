package locomotion

// transition resolves the state for this physics tick. Rules are checked in
// priority order and the first match wins; some rules mutate timers or the
// body on the way out.
func (c *Controller) transition() State {
	vy := c.body.Velocity().Y
	p := c.probes

	if c.timers.Active(TimerRoofJumpOverride) {
		return RoofJumping
	}
	if c.timers.Active(TimerWallJumpOverride) {
		return WallJumping
	}

	switch c.ledgeGrab() {
	case grabHold:
		return LedgeGrabbing
	case grabRelease:
		return Falling
	}

	if p.OnClimbableRoof {
		c.timers.Clear(TimerCoyote)
		return RoofClimbing
	}

	if p.TouchingWall() && !p.Grounded && vy <= 0 {
		if c.m.State != WallSliding {
			c.timers.Set(TimerWallLatch, c.cfg.WallLatchTime)
			c.m.WallSlideTimer = 0
		}
		c.timers.Clear(TimerCoyote)
		return WallSliding
	}

	if p.Grounded {
		c.timers.Set(TimerCoyote, c.cfg.CoyoteTime)
		// A buffered press beats settling on the ground.
		if c.timers.Active(TimerJumpBuffer) {
			c.groundJump()
			return Jumping
		}
		return Grounded
	}

	if vy > 0 {
		c.timers.Clear(TimerCoyote)
		return Jumping
	}

	return Falling
}

type grabResult int

const (
	grabNone grabResult = iota
	grabHold
	grabRelease
)

// ledgeGrab runs the grab sub-machine. An existing grab sticks until the
// input turns away from the ledge.
func (c *Controller) ledgeGrab() grabResult {
	dir := c.input.direction()

	if c.m.State == LedgeGrabbing {
		if dir != 0 && dir == -c.m.LedgeFacing {
			c.releaseLedge()
			return grabRelease
		}
		return grabHold
	}

	p := c.probes
	switch {
	case dir == 0, p.Ledge == nil, p.Grounded:
		return grabNone
	case c.m.State == WallSliding:
		return grabNone
	case c.timers.Active(TimerLedgeRelease):
		return grabNone
	case c.body.Velocity().Y > c.cfg.LedgeGrabMaxRiseSpeed:
		return grabNone
	}

	c.grabLedge(*p.Ledge, dir)
	return grabHold
}

func (c *Controller) grabLedge(anchor Anchor, dir int) {
	c.m.LedgeFacing = dir
	c.m.LedgeAnchor = anchor
	c.m.Sustaining = false
	c.body.SetVelocity(Vec2{})
	c.body.SetGravityScale(0)
	c.body.SetPosition(c.hangPosition(anchor, dir))
}

// hangPosition is where the body hangs below anchor when facing dir.
func (c *Controller) hangPosition(anchor Anchor, dir int) Vec2 {
	off := c.cfg.LedgeHangOffset
	return anchor.Position.Sub(Vec2{X: float64(dir) * off.X, Y: off.Y})
}

func (c *Controller) releaseLedge() {
	c.body.SetGravityScale(c.cfg.BaseGravityScale)
	c.timers.Set(TimerLedgeRelease, c.cfg.LedgeRegrabDelay)
	c.setState(Falling)
}
