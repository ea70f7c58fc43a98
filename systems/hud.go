package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/fonts"
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudPanelWidth = 210
)

var (
	hudPanelColor  = color.RGBA{0, 0, 0, 150}
	hudTextColor   = color.RGBA{240, 240, 240, 255}
	hudStatusColor = color.RGBA{255, 220, 120, 255}
	hudHintColor   = color.RGBA{160, 160, 170, 255}
)

const controlsHint = "A/D move  Space jump  S drop  Ctrl walk  Shift sprint  R reset  F1 debug  F2 hud  F5 reload"

// DrawHUD renders the locomotion readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHUD {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	loco := components.Locomotion.Get(playerEntry)
	c := loco.Controller
	vel := loco.Body.Velocity()

	state := c.State().String()
	if c.State().Airborne() {
		state += " (air)"
	}
	lines := []string{
		"state   " + state,
		fmt.Sprintf("vel     %+6.2f %+6.2f", vel.X, vel.Y),
		fmt.Sprintf("facing  %s", facingLabel(c.Facing())),
		fmt.Sprintf("speed   %s", speedTier(c.Input())),
		fmt.Sprintf("resets  %d", components.Player.Get(playerEntry).Resets),
		fmt.Sprintf("input   %s", components.PlayerInput.Get(playerEntry).InputMethod),
	}

	panelHeight := float32(len(lines)*hudLineHeight + 8)
	vector.FillRect(screen, hudMargin, hudMargin, hudPanelWidth, panelHeight, hudPanelColor, false)

	face := fonts.Regular.Get()
	y := hudMargin + hudLineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin+6, y, hudTextColor)
		y += hudLineHeight
	}

	if settings.StatusFrames > 0 {
		text.Draw(screen, settings.Status, fonts.Bold.Get(), hudMargin, y+hudLineHeight, hudStatusColor)
	}

	text.Draw(screen, controlsHint, fonts.Mono.Get(), hudMargin, screen.Bounds().Dy()-6, hudHintColor)
}

func facingLabel(facing int) string {
	if facing < 0 {
		return "left"
	}
	return "right"
}

// speedTier names the run speed the input selects.
func speedTier(in locomotion.Input) string {
	switch {
	case in.Sprint:
		return "sprint"
	case in.Walk:
		return "walk"
	}
	return "run"
}
