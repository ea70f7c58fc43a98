package factory

import (
	"github.com/automoto/ledgehop/archetypes"
	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// createGeometry wraps a level collision object in an entity so renderers
// can iterate it. Ledge objects keep their anchor in Data.
func createGeometry(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	var entry *donburi.Entry
	switch {
	case obj.HasTags(physics.TagLedge):
		entry = archetypes.Ledge.Spawn(ecs)
	case obj.HasTags(physics.TagClimbable):
		entry = archetypes.Roof.Spawn(ecs)
	case obj.HasTags(physics.TagSolid):
		entry = archetypes.Wall.Spawn(ecs)
	default:
		return nil
	}

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry
}
