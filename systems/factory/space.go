package factory

import (
	"github.com/automoto/ledgehop/archetypes"
	"github.com/automoto/ledgehop/components"
	cfg "github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/physics"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld builds the collision space for level and registers its
// geometry as entities.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	w := physics.NewWorld(level, cfg.Physics)
	components.World.SetValue(world, components.WorldData{World: w})

	for _, obj := range w.Space.Objects() {
		createGeometry(ecs, obj)
	}
	return world
}
