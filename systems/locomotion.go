package systems

import (
	"log"

	"github.com/automoto/ledgehop/components"
	cfg "github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/systems/factory"
	"github.com/automoto/ledgehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// outOfBoundsMargin is how far below the map the feet may drop before the
// player is put back at the spawn.
const outOfBoundsMargin = 64.0

// UpdateLocomotion runs the controller's frame update, then as many fixed
// physics steps as the frame time allows.
func UpdateLocomotion(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	input := components.PlayerInput.Get(playerEntry)

	if GetPlayerAction(input, cfg.ActionReset).JustPressed {
		factory.RespawnPlayer(playerEntry, world.World)
		log.Printf("[locomotion] reset to spawn")
		return
	}

	loco := components.Locomotion.Get(playerEntry)
	frame := 1.0 / float64(ebiten.TPS())

	loco.Controller.Update(LocomotionInput(input), frame)
	for steps := loco.Clock.Advance(frame); steps > 0; steps-- {
		loco.Ticks++
		loco.Controller.FixedUpdate(loco.Clock.Step)
		loco.Body.Step(loco.Clock.Step)
	}

	if _, feetY := loco.Body.Feet(); feetY > world.Scale.MapHeight+outOfBoundsMargin {
		log.Printf("[locomotion] fell out of the map at tick %d, respawning", loco.Ticks)
		factory.RespawnPlayer(playerEntry, world.World)
	}
}
