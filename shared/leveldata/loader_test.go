package leveldata

import (
	"testing"
	"testing/fstest"
)

const objectsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="144" width="320" height="16"/>
  <object id="2" x="0" y="0" width="16" height="144"/>
 </objectgroup>
 <objectgroup id="2" name="ClimbableRoof">
  <object id="3" x="64" y="48" width="96" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="Ledge">
  <object id="4" x="200" y="96" width="8" height="8"/>
  <object id="5" x="240" y="96" width="8" height="8">
   <properties>
    <property name="anchorX" type="int" value="250"/>
    <property name="anchorY" type="int" value="90"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="6" x="120" y="128">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="7" x="32" y="128">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const tilesTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="walls.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Solid" width="3" height="2">
  <data encoding="csv">
0,0,1,
1,1,1
</data>
 </layer>
</map>
`

func TestLoadLevelObjects(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/training.tmx": {Data: []byte(objectsTMX)},
	}

	level, err := LoadLevel(fsys, "levels/training.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "training" {
		t.Errorf("name = %q, want training", level.Name)
	}
	if level.MapWidth != 320 || level.MapHeight != 160 {
		t.Errorf("map size = %dx%d, want 320x160", level.MapWidth, level.MapHeight)
	}
	if len(level.SolidRects) != 2 {
		t.Fatalf("solids = %d, want 2", len(level.SolidRects))
	}
	if got := level.SolidRects[0]; got != (Rect{X: 0, Y: 144, W: 320, H: 16}) {
		t.Errorf("floor = %+v", got)
	}
	if len(level.RoofRects) != 1 || level.RoofRects[0].W != 96 {
		t.Errorf("roofs = %+v", level.RoofRects)
	}

	if len(level.Ledges) != 2 {
		t.Fatalf("ledges = %d, want 2", len(level.Ledges))
	}
	if l := level.Ledges[0]; l.AnchorX != 204 || l.AnchorY != 96 {
		t.Errorf("default anchor = (%v, %v), want top-centre (204, 96)", l.AnchorX, l.AnchorY)
	}
	if l := level.Ledges[1]; l.AnchorX != 250 || l.AnchorY != 90 {
		t.Errorf("property anchor = (%v, %v), want (250, 90)", l.AnchorX, l.AnchorY)
	}

	if len(level.SpawnPoints) != 2 || level.SpawnPoints[0].X != 32 {
		t.Errorf("spawns not sorted left-to-right: %+v", level.SpawnPoints)
	}
	if s := level.Spawn(); s.Index != 0 || s.X != 32 {
		t.Errorf("Spawn() = %+v, want index 0", s)
	}
}

func TestLoadLevelSolidTiles(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles.tmx": {Data: []byte(tilesTMX)},
	}

	level, err := LoadLevel(fsys, "tiles.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	want := []Rect{
		{X: 32, Y: 0, W: 16, H: 16},
		{X: 0, Y: 16, W: 16, H: 16},
		{X: 16, Y: 16, W: 16, H: 16},
		{X: 32, Y: 16, W: 16, H: 16},
	}
	if len(level.SolidRects) != len(want) {
		t.Fatalf("solid tiles = %+v", level.SolidRects)
	}
	for i, r := range want {
		if level.SolidRects[i] != r {
			t.Errorf("tile %d = %+v, want %+v", i, level.SolidRects[i], r)
		}
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": {Data: []byte("<map")},
	}
	if _, err := LoadLevel(fsys, "bad.tmx"); err == nil {
		t.Error("malformed TMX should fail")
	}
	if _, err := LoadLevel(fsys, "missing.tmx"); err == nil {
		t.Error("missing TMX should fail")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":     {Data: []byte(objectsTMX)},
		"levels/a.tmx":     {Data: []byte(tilesTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if levels["b"] == nil || len(levels["b"].Ledges) != 2 {
		t.Errorf("level b not loaded: %+v", levels["b"])
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("empty directory should fail")
	}
}

func TestSpawnFallback(t *testing.T) {
	l := &Level{TileWidth: 16, TileHeight: 16}
	if s := l.Spawn(); s.X != 16 || s.Y != 16 {
		t.Errorf("fallback spawn = %+v", s)
	}
}
