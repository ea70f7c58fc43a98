package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ledgehop/assets"
	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/fonts"
	"github.com/automoto/ledgehop/scenes"
	"github.com/automoto/ledgehop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "training", "level name under assets/levels, or a path to a .tmx file")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded with F5")
	logTransitions := flag.Bool("log-transitions", false, "log every locomotion state change")
	flag.Parse()

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("[tuning] %v", err)
		}
		tuning.Apply()
	}
	if *logTransitions {
		config.Movement.LogTransitions = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("[persistence] disabled: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved)

	// The saved level only applies when -level was left at its default
	name := *levelName
	if saved != nil && saved.LastLevel != "" && !flagSet("level") {
		name = saved.LastLevel
	}

	levels, _, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	level, ok := levels[name]
	if !ok {
		level, err = assets.LoadLevel(name)
		if err != nil {
			log.Fatalf("Failed to load level %q: %v", name, err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("ledgehop")
	ebiten.SetTPS(config.C.TPS)

	game := &Game{
		scene: scenes.NewLocomotionScene(level, levels, systems.SettingsFromSaved(saved, *tuningPath)),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
