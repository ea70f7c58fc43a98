package systems

import (
	"image/color"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/automoto/ledgehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	backgroundColor = color.RGBA{24, 26, 34, 255}
	solidColor      = color.RGBA{88, 92, 110, 255}
	roofColor       = color.RGBA{70, 130, 110, 255}
	roofRungColor   = color.RGBA{120, 200, 160, 255}
	ledgeColor      = color.RGBA{230, 190, 80, 255}
)

// roofRungSpacing spaces the marks that set climbable roofs apart from
// plain ceilings.
const roofRungSpacing = 8.0

// DrawLevel renders the level geometry entities as flat rectangles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), solidColor, false)
	})

	tags.Roof.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), roofColor, false)
		for x := o.X; x < o.X+o.W; x += roofRungSpacing {
			vector.FillRect(screen, float32(x+camX), float32(o.Y+o.H-2+camY), 2, 2, roofRungColor, false)
		}
	})

	tags.Ledge.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		ledge, ok := o.Data.(leveldata.Ledge)
		if !ok {
			return
		}
		vector.FillRect(screen, float32(ledge.AnchorX-3+camX), float32(ledge.AnchorY-1+camY), 6, 2, ledgeColor, false)
	})
}

// strokeRect draws a one pixel outline.
func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
