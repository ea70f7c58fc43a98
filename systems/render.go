package systems

import (
	"image/color"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// stateColors tints the player box by locomotion state.
var stateColors = map[locomotion.State]color.RGBA{
	locomotion.Grounded:      {90, 170, 255, 255},
	locomotion.Jumping:       {140, 200, 255, 255},
	locomotion.Falling:       {170, 150, 255, 255},
	locomotion.WallSliding:   {255, 140, 90, 255},
	locomotion.WallJumping:   {255, 190, 120, 255},
	locomotion.RoofClimbing:  {110, 220, 150, 255},
	locomotion.RoofJumping:   {160, 240, 180, 255},
	locomotion.LedgeGrabbing: {250, 210, 90, 255},
	locomotion.LedgeClimbing: {255, 235, 150, 255},
}

var facingColor = color.RGBA{250, 250, 250, 255}

// DrawPlayer renders the player's collision box coloured by state, with a
// marker on the facing side.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return
	}

	loco := components.Locomotion.Get(playerEntry)
	obj := loco.Body.Object
	x, y := obj.X+camX, obj.Y+camY

	c, ok := stateColors[loco.Controller.State()]
	if !ok {
		c = color.RGBA{255, 0, 255, 255}
	}
	vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), c, false)

	// Eye on the facing side, a third of the way down
	eyeX := x + obj.W - 4
	if loco.Controller.Facing() < 0 {
		eyeX = x + 1
	}
	vector.FillRect(screen, float32(eyeX), float32(y+obj.H/3), 3, 3, facingColor, false)
}
