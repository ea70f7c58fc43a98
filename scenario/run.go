package scenario

import (
	"fmt"

	"github.com/automoto/ledgehop/assets"
	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/physics"
	"github.com/automoto/ledgehop/shared/leveldata"
)

// DefaultLevel is loaded for scripts that name none.
const DefaultLevel = "training"

// fallMargin is how far below the map the feet may drop before a run stops.
const fallMargin = 64.0

// Transition is one state change during a run.
type Transition struct {
	Frame    int // 1-based frame the change happened in
	Tick     int // Physics ticks run before the change
	From, To locomotion.State
	Position locomotion.Vec2 // Body centre, world units
}

type Result struct {
	Transitions []Transition
	Frames      int
	Ticks       int
	Final       locomotion.State
	Position    locomotion.Vec2
	FeetX       float64 // Map pixels
	FeetY       float64
	FellOut     bool // Stopped early below the map
}

// States lists the destination of every transition in order.
func (r *Result) States() []locomotion.State {
	out := make([]locomotion.State, len(r.Transitions))
	for i, t := range r.Transitions {
		out[i] = t.To
	}
	return out
}

// Visited reports whether any transition entered s.
func (r *Result) Visited(s locomotion.State) bool {
	for _, t := range r.Transitions {
		if t.To == s {
			return true
		}
	}
	return false
}

// Options is the tuning a run uses.
type Options struct {
	Movement config.MovementConfig
	Physics  config.PhysicsConfig
	Probe    config.ProbeConfig
}

// CurrentOptions snapshots the global configuration.
func CurrentOptions() Options {
	t := config.CurrentTuning()
	return Options{Movement: t.Movement, Physics: t.Physics, Probe: t.Probe}
}

// ResolveLevel loads the level a script names.
func ResolveLevel(s *Script) (*leveldata.Level, error) {
	name := s.Level
	if name == "" {
		name = DefaultLevel
	}
	return assets.LoadLevel(name)
}

// Run replays s against level. Each frame runs the controller's variable
// tick, then as many fixed steps as the accumulated frame time allows.
func Run(s *Script, level *leveldata.Level, opts Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Movement.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movement tuning: %w", err)
	}
	if opts.Physics.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("pixelsPerUnit must be positive, got %v", opts.Physics.PixelsPerUnit)
	}

	frameRate := s.FrameRate
	if frameRate == 0 {
		frameRate = DefaultFrameRate
	}
	frameDt := 1 / frameRate

	spawn := level.Spawn()
	feetX, feetY := spawn.X, spawn.Y
	if s.Spawn != nil {
		feetX, feetY = s.Spawn.X, s.Spawn.Y
	}

	world := physics.NewWorld(level, opts.Physics)
	body := world.SpawnBody(feetX, feetY, opts.Physics, opts.Movement.Gravity)
	prober := physics.NewProber(world, body, opts.Probe)
	controller := locomotion.New(opts.Movement, body, prober)
	clock := locomotion.Accumulator{Step: opts.Movement.FixedTimestep}

	res := &Result{}
	controller.OnStateChange(func(from, to locomotion.State) {
		res.Transitions = append(res.Transitions, Transition{
			Frame:    res.Frames,
			Tick:     res.Ticks,
			From:     from,
			To:       to,
			Position: body.Position(),
		})
	})

	var prev Step
	for _, st := range s.Steps {
		for f := 0; f < st.Frames; f++ {
			res.Frames++
			controller.Update(frameInput(st, prev), frameDt)
			prev = st

			for n := clock.Advance(frameDt); n > 0; n-- {
				res.Ticks++
				controller.FixedUpdate(clock.Step)
				body.Step(clock.Step)
			}

			if _, y := body.Feet(); y > float64(level.MapHeight)+fallMargin {
				res.FellOut = true
				return finish(res, controller, body), nil
			}
		}
	}
	return finish(res, controller, body), nil
}

func finish(res *Result, c *locomotion.Controller, body *physics.Body) *Result {
	res.Final = c.State()
	res.Position = body.Position()
	res.FeetX, res.FeetY = body.Feet()
	return res
}

// frameInput builds the controller input for one frame of cur, with button
// edges taken against the previous frame.
func frameInput(cur, prev Step) locomotion.Input {
	return locomotion.Input{
		Axis:           cur.Axis,
		JumpPressed:    cur.Jump && !prev.Jump,
		JumpHeld:       cur.Jump,
		JumpReleased:   !cur.Jump && prev.Jump,
		DescendPressed: cur.Descend && !prev.Descend,
		Walk:           cur.Walk,
		Sprint:         cur.Sprint,
	}
}
