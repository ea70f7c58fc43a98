package factory

import (
	"sort"

	"github.com/automoto/ledgehop/archetypes"
	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with current as the active level.
// current is added to levels when it was loaded from outside the set.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.Level, current *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if levels == nil {
		levels = map[string]*leveldata.Level{}
	}
	if _, ok := levels[current.Name]; !ok {
		levels[current.Name] = current
	}

	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)

	index := sort.SearchStrings(names, current.Name)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		LevelIndex:   index,
		Names:        names,
		Levels:       levels,
	})
	return level
}
