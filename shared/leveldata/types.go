// Package leveldata provides TMX level parsing for the game and the headless
// tools. It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// All coordinates are in map pixels with Y pointing down, as Tiled stores them.
package leveldata

// Level holds the collision geometry and spawns parsed from a TMX file.
type Level struct {
	Name string

	SolidRects  []Rect
	RoofRects   []Rect // Surfaces the body can hang from and shimmy along
	Ledges      []Ledge
	SpawnPoints []SpawnPoint

	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
}

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Ledge is a grabbable ledge volume. AnchorX, AnchorY is where the feet of a
// body standing on top of the ledge end up after a climb.
type Ledge struct {
	Rect
	AnchorX, AnchorY float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn with the lowest index, or the map's top-left
// corner when the level has none.
func (l *Level) Spawn() SpawnPoint {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{X: float64(l.TileWidth), Y: float64(l.TileHeight)}
	}
	best := l.SpawnPoints[0]
	for _, s := range l.SpawnPoints[1:] {
		if s.Index < best.Index {
			best = s
		}
	}
	return best
}
