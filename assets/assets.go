package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/ledgehop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the embedded levels directory.
const LevelsDir = "levels"

// LoadLevels loads every embedded level, keyed by file stem.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, LevelsDir)
}

// LoadLevel resolves name against the embedded levels first, then as a TMX
// path on disk.
func LoadLevel(name string) (*leveldata.Level, error) {
	embedded := filepath.ToSlash(filepath.Join(LevelsDir, name+".tmx"))
	if _, err := fs.Stat(assetFS, embedded); err == nil {
		return leveldata.LoadLevel(assetFS, embedded)
	}

	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("level %q is neither embedded nor a file: %w", name, err)
	}
	return leveldata.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}
