package physics

import (
	"math"
	"testing"

	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/shared/leveldata"
)

const dt = 0.02

// testLevel is a 320x160 room: a floor, a block on the right with a ledge on
// its top-left corner, and a climbable roof strip on the left.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name: "test",
		SolidRects: []leveldata.Rect{
			{X: 0, Y: 144, W: 320, H: 16},
			{X: 200, Y: 64, W: 16, H: 80},
		},
		RoofRects: []leveldata.Rect{
			{X: 40, Y: 40, W: 80, H: 8},
		},
		Ledges: []leveldata.Ledge{
			{Rect: leveldata.Rect{X: 196, Y: 60, W: 8, H: 8}, AnchorX: 208, AnchorY: 64},
		},
		MapWidth:   320,
		MapHeight:  160,
		TileWidth:  16,
		TileHeight: 16,
	}
}

func testPhysics() config.PhysicsConfig {
	return config.PhysicsConfig{
		PixelsPerUnit:    16,
		TerminalVelocity: 20,
		CellSize:         16,
		BodyWidth:        14,
		BodyHeight:       30,
	}
}

func testProbe() config.ProbeConfig {
	return config.ProbeConfig{
		GroundDepth: 2,
		GroundInset: 2,
		WallReach:   2,
		WallInset:   4,
		RoofReach:   2,
		LedgeSize:   6,
		ChestHeight: 6,
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(testLevel(), testPhysics())
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestScaleRoundTrip(t *testing.T) {
	s := Scale{PixelsPerUnit: 16, MapHeight: 160}

	p := s.ToWorld(32, 144)
	if p != (locomotion.Vec2{X: 2, Y: 1}) {
		t.Errorf("ToWorld(32, 144) = %+v, want (2, 1)", p)
	}
	x, y := s.ToPixels(p)
	if x != 32 || y != 144 {
		t.Errorf("ToPixels round trip = (%v, %v)", x, y)
	}
}

func TestNewSpaceTagsGeometry(t *testing.T) {
	w := newTestWorld(t)

	counts := map[string]int{}
	for _, obj := range w.Space.Objects() {
		for _, tag := range []string{TagSolid, TagClimbable, TagLedge} {
			if obj.HasTags(tag) {
				counts[tag]++
			}
		}
	}
	if counts[TagSolid] != 3 || counts[TagClimbable] != 1 || counts[TagLedge] != 1 {
		t.Errorf("tag counts = %v", counts)
	}
}

func TestBodyFallsAndLands(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(100, 100, testPhysics(), -9.81)
	body.SetGravityScale(3)

	landed := false
	for i := 0; i < 300 && !landed; i++ {
		body.Step(dt)
		landed = body.Landed
	}
	if !landed {
		t.Fatal("body never landed")
	}

	_, feetY := body.Feet()
	if !near(feetY, 144) {
		t.Errorf("feet at y=%v, want resting on the floor at 144", feetY)
	}
	if body.Velocity().Y != 0 {
		t.Errorf("vy = %v after landing", body.Velocity().Y)
	}

	// Resting stays put.
	for i := 0; i < 10; i++ {
		body.Step(dt)
	}
	if _, y := body.Feet(); !near(y, 144) {
		t.Errorf("resting body drifted to %v", y)
	}
}

func TestBodyBlockedByWall(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(150, 144, testPhysics(), -9.81)
	body.SetVelocity(locomotion.Vec2{X: 20})

	blocked := false
	for i := 0; i < 100 && !blocked; i++ {
		body.SetVelocity(locomotion.Vec2{X: 20, Y: body.Velocity().Y})
		body.Step(dt)
		blocked = body.Blocked
	}
	if !blocked {
		t.Fatal("body walked through the wall")
	}
	if right := body.Object.X + body.Object.W; !near(right, 200) {
		t.Errorf("right edge at %v, want flush with the wall at 200", right)
	}
	if body.Velocity().X != 0 {
		t.Errorf("vx = %v after hitting the wall", body.Velocity().X)
	}
}

func TestBodyTerminalVelocity(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(260, 40, testPhysics(), -9.81)
	body.SetVelocity(locomotion.Vec2{Y: -100})

	body.Step(0.001)
	if body.Velocity().Y != -20 {
		t.Errorf("vy = %v, want clamped to -20", body.Velocity().Y)
	}
}

func TestBodyNotSimulated(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(100, 100, testPhysics(), -9.81)
	body.SetVelocity(locomotion.Vec2{X: 5, Y: -5})
	body.SetSimulated(false)
	if body.Simulated() {
		t.Fatal("SetSimulated(false) did not stick")
	}
	before := body.Position()

	body.Step(dt)
	if body.Position() != before {
		t.Errorf("suspended body moved from %+v to %+v", before, body.Position())
	}
	if body.Velocity() != (locomotion.Vec2{X: 5, Y: -5}) {
		t.Errorf("suspended body velocity changed to %+v", body.Velocity())
	}
}

func TestBodySetPosition(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(100, 144, testPhysics(), -9.81)

	want := locomotion.Vec2{X: 4, Y: 3}
	body.SetPosition(want)
	if got := body.Position(); !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}
}

// centreAtFeet returns the body centre in world units for feet at (x, y) px.
func centreAtFeet(w *World, x, y float64) locomotion.Vec2 {
	return w.Scale.ToWorld(x, y-testPhysics().BodyHeight/2)
}

func TestProber(t *testing.T) {
	tests := []struct {
		name      string
		feetX     float64
		feetY     float64
		direction int
		want      locomotion.ProbeResult
		wantLedge bool
	}{
		{
			name:  "standing on floor",
			feetX: 100, feetY: 144,
			want: locomotion.ProbeResult{Grounded: true},
		},
		{
			name:  "mid air",
			feetX: 100, feetY: 100,
			want: locomotion.ProbeResult{},
		},
		{
			name:  "against the block",
			feetX: 193, feetY: 144,
			want: locomotion.ProbeResult{Grounded: true, TouchingWallRight: true},
		},
		{
			name:  "under the roof",
			feetX: 80, feetY: 78,
			want: locomotion.ProbeResult{OnClimbableRoof: true},
		},
		{
			name:  "below the ledge facing it",
			feetX: 193, feetY: 85, direction: 1,
			want:      locomotion.ProbeResult{TouchingWallRight: true},
			wantLedge: true,
		},
		{
			name:  "below the ledge facing away",
			feetX: 193, feetY: 85, direction: -1,
			want: locomotion.ProbeResult{TouchingWallRight: true},
		},
		{
			name:  "below the ledge without input",
			feetX: 193, feetY: 85, direction: 0,
			want: locomotion.ProbeResult{TouchingWallRight: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			body := w.SpawnBody(tt.feetX, tt.feetY, testPhysics(), -9.81)
			p := NewProber(w, body, testProbe())

			got := p.Probe(body.Position(), tt.direction)

			if (got.Ledge != nil) != tt.wantLedge {
				t.Fatalf("ledge = %v, want hit %v", got.Ledge, tt.wantLedge)
			}
			got.Ledge = nil
			if got != tt.want {
				t.Errorf("probe = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProberLedgeAnchorIsStandingCentre(t *testing.T) {
	w := newTestWorld(t)
	body := w.SpawnBody(193, 85, testPhysics(), -9.81)
	p := NewProber(w, body, testProbe())

	got := p.Probe(body.Position(), 1)
	if got.Ledge == nil {
		t.Fatal("no ledge")
	}

	// Standing on the block with feet at the anchor point (208, 64).
	want := centreAtFeet(w, 208, 64)
	if !near(got.Ledge.Position.X, want.X) || !near(got.Ledge.Position.Y, want.Y) {
		t.Errorf("anchor = %+v, want %+v", got.Ledge.Position, want)
	}

	vols := p.Volumes()
	if !vols[ProbeLedge].Hit || !vols[ProbeLedge].Active {
		t.Errorf("ledge volume not reported: %+v", vols[ProbeLedge])
	}
	if vols[ProbeGround].Hit {
		t.Error("ground volume reported a hit in mid air")
	}

	p.Remove()
	for _, obj := range w.Space.Objects() {
		if obj.HasTags(TagProbe) {
			t.Fatal("probe objects left in the space")
		}
	}
}

func TestControllerSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t)
	mv := config.DefaultMovement()
	body := w.SpawnBody(100, 100, testPhysics(), mv.Gravity)
	prober := NewProber(w, body, testProbe())
	c := locomotion.New(mv, body, prober)

	for i := 0; i < 200; i++ {
		c.Update(locomotion.Input{}, dt)
		c.FixedUpdate(dt)
		body.Step(dt)
	}
	if c.State() != locomotion.Grounded {
		t.Errorf("state = %s, want grounded", c.State())
	}
	if _, y := body.Feet(); !near(y, 144) {
		t.Errorf("feet at %v, want 144", y)
	}
}
