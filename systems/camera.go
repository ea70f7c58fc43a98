package systems

import (
	"math"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	loco := components.Locomotion.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the body is moving - freeze offset when idle
	vx := loco.Body.Velocity().X
	if math.Abs(vx) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := float64(loco.Controller.Facing()) * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	obj := loco.Body.Object
	targetX := obj.X + obj.W/2 + camera.LookAheadX
	targetY := obj.Y + obj.H/2

	targetX, targetY = clampToLevel(targetX, targetY,
		float64(levelData.CurrentLevel.MapWidth), float64(levelData.CurrentLevel.MapHeight))

	if !camera.Snapped {
		camera.Position.X, camera.Position.Y = targetX, targetY
		camera.Snapped = true
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps the view inside the level. Levels smaller than the
// screen are centred.
func clampToLevel(x, y, levelWidth, levelHeight float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	if levelWidth <= screenWidth {
		x = levelWidth / 2
	} else {
		x = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, x))
	}
	if levelHeight <= screenHeight {
		y = levelHeight / 2
	} else {
		y = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, y))
	}
	return x, y
}

// cameraOffset returns the translation from map pixels to screen pixels.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenWidth)/2 - camera.Position.X, float64(screenHeight)/2 - camera.Position.Y, true
}
