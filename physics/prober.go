package physics

import (
	"math"

	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/solarlune/resolv"
)

// ProbeVolume names one of the prober's sensing boxes.
type ProbeVolume int

const (
	ProbeGround ProbeVolume = iota
	ProbeWallLeft
	ProbeWallRight
	ProbeRoof
	ProbeLedge
	probeVolumeCount
)

var probeVolumeNames = [probeVolumeCount]string{
	ProbeGround:    "ground",
	ProbeWallLeft:  "wall_left",
	ProbeWallRight: "wall_right",
	ProbeRoof:      "roof",
	ProbeLedge:     "ledge",
}

func (v ProbeVolume) String() string { return probeVolumeNames[v] }

// Volume is a probe box as of the last Probe call, in pixels.
type Volume struct {
	Kind       ProbeVolume
	X, Y, W, H float64
	Active     bool // The ledge probe is off without horizontal input
	Hit        bool
}

// Prober senses the environment around a body with probe objects kept in
// the collision space. It implements locomotion.Prober.
type Prober struct {
	world  *World
	width  float64 // Body size in pixels
	height float64
	cfg    config.ProbeConfig

	objects [probeVolumeCount]*resolv.Object
	volumes [probeVolumeCount]Volume
}

var _ locomotion.Prober = (*Prober)(nil)

// NewProber creates the probe objects for body.
func NewProber(w *World, body *Body, cfg config.ProbeConfig) *Prober {
	p := &Prober{
		world:  w,
		width:  body.Object.W,
		height: body.Object.H,
		cfg:    cfg,
	}
	for i := range p.objects {
		obj := resolv.NewObject(0, 0, 1, 1, TagProbe)
		obj.Data = ProbeVolume(i)
		p.objects[i] = obj
		p.volumes[i].Kind = ProbeVolume(i)
		w.Space.Add(obj)
	}
	return p
}

// Remove takes the probe objects out of the space.
func (p *Prober) Remove() {
	for _, obj := range p.objects {
		p.world.Space.Remove(obj)
	}
}

// Volumes returns the probe boxes from the last Probe call.
func (p *Prober) Volumes() []Volume {
	return p.volumes[:]
}

// Probe casts every probe around the body centre at position.
func (p *Prober) Probe(position locomotion.Vec2, direction int) locomotion.ProbeResult {
	cx, cy := p.world.Scale.ToPixels(position)
	left := cx - p.width/2
	top := cy - p.height/2
	c := p.cfg

	p.place(ProbeGround, left+c.GroundInset, top+p.height, p.width-2*c.GroundInset, c.GroundDepth)
	p.place(ProbeWallLeft, left-c.WallReach, top+c.WallInset, c.WallReach, p.height-2*c.WallInset)
	p.place(ProbeWallRight, left+p.width, top+c.WallInset, c.WallReach, p.height-2*c.WallInset)
	p.place(ProbeRoof, left+c.GroundInset, top-c.RoofReach, p.width-2*c.GroundInset, c.RoofReach)

	ledgeX := cx + float64(direction)*(p.width/2+c.LedgeSize/2) - c.LedgeSize/2
	ledgeY := cy - c.ChestHeight - c.LedgeSize/2
	p.place(ProbeLedge, ledgeX, ledgeY, c.LedgeSize, c.LedgeSize)

	var r locomotion.ProbeResult
	r.Grounded = p.hit(ProbeGround, TagSolid) != nil
	r.TouchingWallLeft = p.hit(ProbeWallLeft, TagSolid) != nil
	r.TouchingWallRight = p.hit(ProbeWallRight, TagSolid) != nil
	r.OnClimbableRoof = p.hit(ProbeRoof, TagClimbable) != nil

	p.volumes[ProbeLedge].Active = direction != 0
	p.volumes[ProbeLedge].Hit = false
	if direction != 0 {
		if ledge, ok := p.nearestLedge(ledgeX+c.LedgeSize/2, ledgeY+c.LedgeSize/2); ok {
			// The anchor is the feet point; the controller works with the body centre.
			r.Ledge = &locomotion.Anchor{
				Position: p.world.Scale.ToWorld(ledge.AnchorX, ledge.AnchorY-p.height/2),
			}
			p.volumes[ProbeLedge].Hit = true
		}
	}
	return r
}

func (p *Prober) place(kind ProbeVolume, x, y, w, h float64) {
	obj := p.objects[kind]
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
	p.volumes[kind] = Volume{Kind: kind, X: x, Y: y, W: w, H: h, Active: true}
}

// hit returns the first object tagged tag that overlaps the probe.
func (p *Prober) hit(kind ProbeVolume, tag string) *resolv.Object {
	obj := p.objects[kind]
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tag) {
		if overlaps(obj, o) {
			p.volumes[kind].Hit = true
			return o
		}
	}
	return nil
}

// nearestLedge picks the overlapping ledge whose volume centre is closest to
// (x, y).
func (p *Prober) nearestLedge(x, y float64) (leveldata.Ledge, bool) {
	obj := p.objects[ProbeLedge]
	check := obj.Check(0, 0, TagLedge)
	if check == nil {
		return leveldata.Ledge{}, false
	}

	var best leveldata.Ledge
	bestDist := math.Inf(1)
	found := false
	for _, o := range check.ObjectsByTags(TagLedge) {
		ledge, ok := o.Data.(leveldata.Ledge)
		if !ok || !overlaps(obj, o) {
			continue
		}
		lx, ly := ledge.Center()
		if d := math.Hypot(lx-x, ly-y); d < bestDist {
			best, bestDist, found = ledge, d, true
		}
	}
	return best, found
}
