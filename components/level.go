package components

import (
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Names        []string // Sorted level names
	Levels       map[string]*leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
