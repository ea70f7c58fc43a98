package assets

import (
	"testing"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded levels")
	}

	training := levels["training"]
	if training == nil {
		t.Fatalf("training level missing from %v", names)
	}
	if len(training.SolidRects) == 0 || len(training.RoofRects) == 0 || len(training.Ledges) == 0 {
		t.Errorf("training level is missing geometry: %d solids, %d roofs, %d ledges",
			len(training.SolidRects), len(training.RoofRects), len(training.Ledges))
	}
	if len(training.SpawnPoints) == 0 {
		t.Error("training level has no spawn")
	}

	// Every ledge anchor sits on top of a solid.
	for _, l := range training.Ledges {
		supported := false
		for _, s := range training.SolidRects {
			if l.AnchorY == s.Y && l.AnchorX > s.X && l.AnchorX < s.X+s.W {
				supported = true
				break
			}
		}
		if !supported {
			t.Errorf("ledge anchor (%v, %v) is not on a solid top", l.AnchorX, l.AnchorY)
		}
	}
}

func TestLoadLevelByName(t *testing.T) {
	level, err := LoadLevel("training")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Name != "training" {
		t.Errorf("name = %q", level.Name)
	}

	if _, err := LoadLevel("no-such-level"); err == nil {
		t.Error("unknown level should fail")
	}
}
