package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/fonts"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/physics"
	"github.com/automoto/ledgehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugTextColor  = color.RGBA{220, 220, 220, 255}
	probeMissColor  = color.RGBA{90, 90, 90, 255}
	probeHitColor   = color.RGBA{80, 255, 120, 255}
	ledgeProbeColor = color.RGBA{255, 210, 60, 255}
	timerBackColor  = color.RGBA{40, 40, 40, 200}
	timerFillColor  = color.RGBA{100, 180, 255, 255}
	climbPathColor  = color.RGBA{255, 120, 200, 255}
)

const (
	debugPanelX     = 8
	debugLineHeight = 12
	timerBarWidth   = 80
)

// DrawDebug overlays collision objects, probe volumes, timers and recent
// state transitions.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return
	}

	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry).World
	drawSpaceObjects(screen, world, camX, camY, width, height)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	loco := components.Locomotion.Get(playerEntry)

	drawProbeVolumes(screen, loco.Prober, camX, camY)
	drawClimbPath(screen, loco.Controller.Climb(), world.Scale, camX, camY)

	y := height - debugLineHeight*(len(locomotion.TimerIDs())+components.HistorySize+2)
	y = drawTimers(screen, loco.Controller, y)
	drawHistory(screen, loco, y+debugLineHeight)
}

func drawSpaceObjects(screen *ebiten.Image, world *physics.World, camX, camY float64, width, height int) {
	// Viewport in map pixels
	viewX, viewY := -camX, -camY
	viewW, viewH := float64(width), float64(height)

	for _, obj := range world.Space.Objects() {
		if obj.HasTags(physics.TagProbe) {
			continue // Drawn from the prober's snapshot
		}
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(physics.TagClimbable):
			c = color.RGBA{0, 200, 120, 255}
		case obj.HasTags(physics.TagSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(physics.TagPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(physics.TagLedge):
			c = ledgeProbeColor
		}
		strokeRect(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, c)
	}
}

func drawProbeVolumes(screen *ebiten.Image, prober *physics.Prober, camX, camY float64) {
	for _, v := range prober.Volumes() {
		if !v.Active {
			continue
		}
		c := probeMissColor
		if v.Hit {
			c = probeHitColor
			if v.Kind == physics.ProbeLedge {
				c = ledgeProbeColor
			}
		}
		strokeRect(screen, v.X+camX, v.Y+camY, v.W, v.H, c)
	}
}

func drawClimbPath(screen *ebiten.Image, climb *locomotion.LedgeClimb, scale physics.Scale, camX, camY float64) {
	if climb == nil {
		return
	}
	points := []locomotion.Vec2{climb.Start, climb.Mid, climb.End}
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := scale.ToPixels(points[i])
		x1, y1 := scale.ToPixels(points[i+1])
		vector.StrokeLine(screen, float32(x0+camX), float32(y0+camY), float32(x1+camX), float32(y1+camY), 1, climbPathColor, false)
	}
}

// drawTimers draws one bar per timer, filled by the remaining fraction of
// its configured duration. Returns the next free line.
func drawTimers(screen *ebiten.Image, c *locomotion.Controller, y int) int {
	face := fonts.Mono.Get()
	timers := c.Timers()
	mv := c.Settings()

	for _, id := range locomotion.TimerIDs() {
		text.Draw(screen, id.String(), face, debugPanelX, y+debugLineHeight-2, debugTextColor)

		barX := float32(debugPanelX + 120)
		vector.FillRect(screen, barX, float32(y+2), timerBarWidth, debugLineHeight-4, timerBackColor, false)
		if full := timerDuration(mv, id); full > 0 && timers.Active(id) {
			ratio := float32(min(1, timers.Value(id)/full))
			vector.FillRect(screen, barX, float32(y+2), timerBarWidth*ratio, debugLineHeight-4, timerFillColor, false)
		}
		y += debugLineHeight
	}
	return y
}

func drawHistory(screen *ebiten.Image, loco *components.LocomotionData, y int) {
	face := fonts.Mono.Get()
	for _, rec := range loco.History {
		line := fmt.Sprintf("%6d  %s -> %s", rec.Tick, rec.From, rec.To)
		text.Draw(screen, line, face, debugPanelX, y+debugLineHeight-2, debugTextColor)
		y += debugLineHeight
	}
}

// timerDuration is the value a timer starts from, used to scale its bar.
func timerDuration(mv config.MovementConfig, id locomotion.TimerID) float64 {
	switch id {
	case locomotion.TimerCoyote:
		return mv.CoyoteTime
	case locomotion.TimerJumpBuffer:
		return mv.JumpBufferTime
	case locomotion.TimerWallLatch:
		return mv.WallLatchTime
	case locomotion.TimerWallStick:
		return mv.WallStickTime
	case locomotion.TimerWallJumpOverride:
		return mv.WallJumpOverrideTime
	case locomotion.TimerRoofJumpOverride:
		return mv.RoofJumpOverrideTime
	case locomotion.TimerLedgeRelease:
		return mv.LedgeRegrabDelay
	}
	return 0
}
