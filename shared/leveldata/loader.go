package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from the TMX file.
const (
	LayerSolid         = "Solid"
	LayerClimbableRoof = "ClimbableRoof"
	LayerLedge         = "Ledge"
	LayerPlayerSpawn   = "PlayerSpawn"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (tools).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	// Solid tiles from a tile layer, when the map paints its walls
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolid {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.SolidRects = append(level.SolidRects, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerSolid:
			for _, o := range og.Objects {
				level.SolidRects = append(level.SolidRects, objectRect(o))
			}
		case LayerClimbableRoof:
			for _, o := range og.Objects {
				level.RoofRects = append(level.RoofRects, objectRect(o))
			}
		case LayerLedge:
			for _, o := range og.Objects {
				level.Ledges = append(level.Ledges, parseLedge(o))
			}
		case LayerPlayerSpawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// parseLedge reads a ledge volume. The anchor defaults to the top-centre of
// the rect; anchorX/anchorY properties override it in map pixels.
func parseLedge(o *tiled.Object) Ledge {
	l := Ledge{
		Rect:    objectRect(o),
		AnchorX: o.X + o.Width/2,
		AnchorY: o.Y,
	}
	if hasProperty(o.Properties, "anchorX") {
		l.AnchorX = float64(o.Properties.GetInt("anchorX"))
	}
	if hasProperty(o.Properties, "anchorY") {
		l.AnchorY = float64(o.Properties.GetInt("anchorY"))
	}
	return l
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
