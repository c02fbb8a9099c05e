package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/fonts"
	"github.com/automoto/skyraid/scenes"
	"github.com/automoto/skyraid/sim"
	"github.com/automoto/skyraid/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(config.C.Width), int(config.C.Height)
}

func main() {
	settingsPath := flag.String("config", "", "settings TOML file")
	fontPath := flag.String("font", "", "TrueType font for the HUD")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		s, err := config.Load(*settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
	}

	logger, err := sim.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *fontPath != "" {
		ttf, err := os.ReadFile(*fontPath)
		if err != nil {
			logger.Warn("could not read font", zap.String("path", *fontPath), zap.Error(err))
		} else {
			for name, size := range map[fonts.FontName]float64{fonts.HUD: 12, fonts.Title: 24, fonts.Small: 10} {
				if err := fonts.LoadFontWithSize(name, ttf, size); err != nil {
					logger.Warn("could not load font", zap.Error(err))
				}
			}
		}
	}

	opts := sim.Options{Log: logger}
	if settings.Persistence.Enabled {
		store, err := systems.NewGdataStore(settings.Persistence.AppName)
		if err != nil {
			logger.Warn("could not initialize persistence", zap.Error(err))
		} else {
			opts.Store = store
		}
	}

	scene, err := scenes.NewRaidScene(settings, opts)
	if err != nil {
		logger.Fatal("could not start simulation", zap.Error(err))
	}
	defer scene.Close()

	ebiten.SetWindowSize(int(config.C.Width), int(config.C.Height))
	ebiten.SetWindowTitle("skyraid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Error("game stopped", zap.Error(err))
	}
}
