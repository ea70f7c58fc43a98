package physics

import (
	"math"

	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/solarlune/resolv"
)

// Body is a simulated box in the collision space. It implements
// locomotion.Body; velocities are in world units per second.
type Body struct {
	Object *resolv.Object

	scale     Scale
	vel       locomotion.Vec2
	gravity   float64 // Units/s², negative
	gravScale float64
	terminal  float64
	simulated bool

	// Set by the last Step
	Landed  bool
	Blocked bool
}

var _ locomotion.Body = (*Body)(nil)

// SpawnBody adds a body with its feet at the given pixel point.
func (w *World) SpawnBody(feetX, feetY float64, phys config.PhysicsConfig, gravity float64) *Body {
	obj := resolv.NewObject(feetX-phys.BodyWidth/2, feetY-phys.BodyHeight, phys.BodyWidth, phys.BodyHeight, TagPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, phys.BodyWidth, phys.BodyHeight))
	w.Space.Add(obj)

	return &Body{
		Object:    obj,
		scale:     w.Scale,
		gravity:   gravity,
		gravScale: 1,
		terminal:  phys.TerminalVelocity,
		simulated: true,
	}
}

func (b *Body) Velocity() locomotion.Vec2     { return b.vel }
func (b *Body) SetVelocity(v locomotion.Vec2) { b.vel = v }
func (b *Body) GravityScale() float64         { return b.gravScale }
func (b *Body) SetGravityScale(s float64)     { b.gravScale = s }
func (b *Body) SetSimulated(on bool)          { b.simulated = on }

// Simulated reports whether Step moves the body.
func (b *Body) Simulated() bool { return b.simulated }

// Position is the centre of the box in world units.
func (b *Body) Position() locomotion.Vec2 {
	return b.scale.ToWorld(b.Object.X+b.Object.W/2, b.Object.Y+b.Object.H/2)
}

// SetPosition teleports the centre of the box without collision checks.
func (b *Body) SetPosition(p locomotion.Vec2) {
	px, py := b.scale.ToPixels(p)
	b.Object.X = px - b.Object.W/2
	b.Object.Y = py - b.Object.H/2
	b.Object.Update()
}

// Feet returns the bottom-centre of the box in pixels.
func (b *Body) Feet() (float64, float64) {
	return b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H
}

// Step integrates gravity and moves the body against solid geometry,
// horizontal axis first.
func (b *Body) Step(dt float64) {
	b.Landed, b.Blocked = false, false
	if !b.simulated {
		return
	}

	b.vel.Y += b.gravity * b.gravScale * dt
	b.vel.Y = math.Max(b.vel.Y, -b.terminal)

	ppu := b.scale.PixelsPerUnit
	b.moveX(b.vel.X * dt * ppu)
	b.moveY(-b.vel.Y * dt * ppu)
	b.Object.Update()
}

func (b *Body) moveX(dx float64) {
	if dx == 0 {
		return
	}
	obj := b.Object
	if check := obj.Check(dx, 0, TagSolid); check != nil {
		if gap, ok := nearestBlocking(obj, check.ObjectsByTags(TagSolid), dx, 0); ok {
			dx = math.Copysign(gap, dx)
			b.vel.X = 0
			b.Blocked = true
		}
	}
	obj.X += dx
}

func (b *Body) moveY(dy float64) {
	if dy == 0 {
		return
	}
	obj := b.Object
	if check := obj.Check(0, dy, TagSolid); check != nil {
		if gap, ok := nearestBlocking(obj, check.ObjectsByTags(TagSolid), 0, dy); ok {
			dy = math.Copysign(gap, dy)
			if b.vel.Y < 0 {
				b.Landed = true
			}
			b.vel.Y = 0
		}
	}
	obj.Y += dy
}

// contactSlop absorbs rounding left over from snapping flush against a solid.
const contactSlop = 1e-6

// nearestBlocking returns the free distance to the closest solid that obj
// would run into when moving by (dx, dy) along a single axis.
func nearestBlocking(obj *resolv.Object, solids []*resolv.Object, dx, dy float64) (float64, bool) {
	bestGap := math.Inf(1)
	found := false

	for _, s := range solids {
		var gap float64
		switch {
		case dx > 0:
			if !spanOverlap(obj.Y, obj.H, s.Y, s.H) {
				continue
			}
			gap = s.X - (obj.X + obj.W)
		case dx < 0:
			if !spanOverlap(obj.Y, obj.H, s.Y, s.H) {
				continue
			}
			gap = obj.X - (s.X + s.W)
		case dy > 0:
			if !spanOverlap(obj.X, obj.W, s.X, s.W) {
				continue
			}
			gap = s.Y - (obj.Y + obj.H)
		case dy < 0:
			if !spanOverlap(obj.X, obj.W, s.X, s.W) {
				continue
			}
			gap = obj.Y - (s.Y + s.H)
		}

		// Behind the body, or out of reach this step
		if gap < -contactSlop || gap >= math.Abs(dx+dy) {
			continue
		}
		gap = math.Max(gap, 0)
		if gap < bestGap {
			bestGap, found = gap, true
		}
	}
	return bestGap, found
}

func spanOverlap(a, aLen, b, bLen float64) bool {
	return a < b+bLen && a+aLen > b
}
