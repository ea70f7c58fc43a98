package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/ledgehop/components"
	"github.com/automoto/ledgehop/shared/leveldata"
	"github.com/automoto/ledgehop/systems"
	"github.com/automoto/ledgehop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LocomotionScene is a single level with one controlled body.
type LocomotionScene struct {
	ecs      *ecs.ECS
	level    *leveldata.Level
	levels   map[string]*leveldata.Level
	settings components.SettingsData
	once     sync.Once
}

// NewLocomotionScene creates the scene for level. levels is the full set the
// level came from and may be nil.
func NewLocomotionScene(level *leveldata.Level, levels map[string]*leveldata.Level, settings components.SettingsData) *LocomotionScene {
	return &LocomotionScene{level: level, levels: levels, settings: settings}
}

func (s *LocomotionScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *LocomotionScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *LocomotionScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every later system sees this frame's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(components.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(components.LayerDefault, systems.DrawPlayer)
	ecs.AddRenderer(components.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(components.LayerDefault, systems.DrawHUD)

	s.ecs = ecs

	factory.CreateSettings(s.ecs, s.settings)
	factory.CreateLevel(s.ecs, s.levels, s.level)
	worldEntry := factory.CreateWorld(s.ecs, s.level)
	world := components.World.Get(worldEntry)

	spawn := s.level.Spawn()
	factory.CreatePlayer(s.ecs, world.World, spawn.X, spawn.Y)
	factory.CreateCamera(s.ecs, spawn.X, spawn.Y)
}
