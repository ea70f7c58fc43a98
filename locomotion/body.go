package locomotion

// Body is the rigid body driven by the controller. It is owned by the
// physics backend; the controller only writes through these setters.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	Position() Vec2
	SetPosition(p Vec2)
	GravityScale() float64
	SetGravityScale(s float64)
	// SetSimulated suspends or resumes the backend's integration of the body.
	SetSimulated(on bool)
}
