package components

import (
	"github.com/automoto/ledgehop/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision object. Level geometry keeps
// its own payload in Object.Data, so the entity is not stored there.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// WorldData holds the collision space of the loaded level.
type WorldData struct {
	*physics.World
}

var World = donburi.NewComponentType[WorldData]()
