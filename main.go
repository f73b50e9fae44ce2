package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/fonts"
	"github.com/automoto/doomerang-input/scenes"
	"github.com/automoto/doomerang-input/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML config file, watched for changes")
	profile := flag.String("profile", "", "binding profile to start with")
	tps := flag.Int("tps", 0, "ticks per second (0 keeps the configured rate)")
	hud := flag.Bool("hud", false, "show live device state")
	logEvents := flag.Bool("log-events", false, "log every generated event")
	flag.Parse()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("doomerang-input"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	// The config file wins over saved settings, flags win over both
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *profile != "" {
		i, ok := config.Input.ProfileIndex(*profile)
		if !ok {
			log.Fatalf("%v: %q", config.ErrUnknownProfile, *profile)
		}
		config.Input.ActiveProfile = i
	}
	if *tps > 0 {
		config.C.TPS = *tps
	}
	if *hud {
		config.Debug.ShowHUD = true
	}
	if *logEvents {
		config.Debug.LogEvents = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene := scenes.NewViewerScene(*configPath)
	if *configPath != "" {
		go func() {
			if err := config.Watch(ctx, *configPath, scene.RequestReload); err != nil {
				log.Printf("Warning: Could not watch %s: %v", *configPath, err)
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	err := ebiten.RunGame(NewGame(scene))
	systems.SaveCurrentSettings()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
