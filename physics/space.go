// Package physics is the resolv collision backend for the locomotion
// controller. Level geometry lives in a resolv.Space in map pixels with Y
// pointing down; the controller sees world units with Y pointing up.
package physics

import (
	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid     = "solid"
	TagClimbable = "climbable"
	TagLedge     = "ledge"
	TagProbe     = "probe"
	TagPlayer    = "player"
)

// Scale converts between map pixels (Y down, origin top-left) and world units
// (Y up, origin at the bottom of the map).
type Scale struct {
	PixelsPerUnit float64
	MapHeight     float64 // Pixels
}

// ToWorld converts a pixel point to world units.
func (s Scale) ToWorld(px, py float64) locomotion.Vec2 {
	return locomotion.Vec2{
		X: px / s.PixelsPerUnit,
		Y: (s.MapHeight - py) / s.PixelsPerUnit,
	}
}

// ToPixels converts a world point to map pixels.
func (s Scale) ToPixels(p locomotion.Vec2) (float64, float64) {
	return p.X * s.PixelsPerUnit, s.MapHeight - p.Y*s.PixelsPerUnit
}

// World is a level loaded into a collision space.
type World struct {
	Space *resolv.Space
	Scale Scale
	Level *leveldata.Level
}

// NewWorld builds the collision space for level.
func NewWorld(level *leveldata.Level, phys config.PhysicsConfig) *World {
	return &World{
		Space: NewSpace(level, phys.CellSize),
		Scale: Scale{PixelsPerUnit: phys.PixelsPerUnit, MapHeight: float64(level.MapHeight)},
		Level: level,
	}
}

// NewSpace creates a resolv.Space holding the level geometry. Climbable roofs
// are solid too. Ledge objects carry their leveldata.Ledge in Data.
func NewSpace(level *leveldata.Level, cellSize int) *resolv.Space {
	if cellSize <= 0 {
		cellSize = 16
	}
	space := resolv.NewSpace(level.MapWidth, level.MapHeight, cellSize, cellSize)

	for _, r := range level.SolidRects {
		space.Add(newRect(r, TagSolid))
	}
	for _, r := range level.RoofRects {
		space.Add(newRect(r, TagSolid, TagClimbable))
	}
	for _, l := range level.Ledges {
		obj := newRect(l.Rect, TagLedge)
		obj.Data = l
		space.Add(obj)
	}
	return space
}

func newRect(r leveldata.Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// overlaps is a strict AABB test. resolv's Check only narrows candidates down
// to shared cells; touching edges do not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
