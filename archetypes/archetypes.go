package archetypes

import (
	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Locomotion,
		components.PlayerInput,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Roof = newArchetype(
		tags.Roof,
		components.Object,
	)
	Ledge = newArchetype(
		tags.Ledge,
		components.Object,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
