package factory

import (
	"github.com/automoto/ledgehop/archetypes"
	"github.com/automoto/ledgehop/components"
	cfg "github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the controlled body with its feet at (x, y) in map
// pixels.
func CreatePlayer(ecs *ecs.ECS, world *physics.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})
	attachLocomotion(player, world, x, y)

	return player
}

// RespawnPlayer rebuilds the player's body and controller at its spawn,
// picking up the current tuning. The transition history is kept.
func RespawnPlayer(player *donburi.Entry, world *physics.World) {
	loco := components.Locomotion.Get(player)
	spawn := components.Player.Get(player)

	world.Space.Remove(loco.Body.Object)
	loco.Prober.Remove()
	ticks, history := loco.Ticks, loco.History

	attachLocomotion(player, world, spawn.SpawnX, spawn.SpawnY)

	loco = components.Locomotion.Get(player)
	loco.Ticks, loco.History = ticks, history
	spawn.Resets++
}

func attachLocomotion(player *donburi.Entry, world *physics.World, x, y float64) {
	body := world.SpawnBody(x, y, cfg.Physics, cfg.Movement.Gravity)
	body.Object.Data = player
	prober := physics.NewProber(world, body, cfg.Probe)
	controller := locomotion.New(cfg.Movement, body, prober)

	controller.OnStateChange(func(from, to locomotion.State) {
		components.Locomotion.Get(player).Record(from, to)
	})

	components.Object.SetValue(player, components.ObjectData{Object: body.Object})
	components.Locomotion.SetValue(player, components.LocomotionData{
		Controller: controller,
		Body:       body,
		Prober:     prober,
		Clock:      locomotion.Accumulator{Step: cfg.Movement.FixedTimestep},
	})
}
