// Command headless runs simulations without a window, several in parallel, and reports
// how each run ended. It is used for soak testing balance changes.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"runtime"

	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/sim"
	"github.com/automoto/skyraid/systems"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type result struct {
	seed     uint64
	frames   uint64
	score    int
	level    int
	kills    int
	bestCmb  int
	gameOver bool
}

func main() {
	settingsPath := flag.String("config", "", "settings TOML file")
	runs := flag.Int("runs", 8, "number of simulations")
	frames := flag.Int("frames", 60*60*5, "frames per simulation")
	dt := flag.Float64("dt", 1000.0/60, "frame delta in ms")
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

	// Tables are package-level; load them once before any run starts.
	if settings.Tables != "" {
		if err := config.LoadTables(settings.Tables); err != nil {
			logger.Fatal("could not load tables", zap.Error(err))
		}
		settings.Tables = ""
	}

	results := make([]result, *runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < *runs; i++ {
		s := *settings
		s.Sim.Seed = settings.Sim.Seed + uint64(i)
		g.Go(func() error {
			r, err := soak(ctx, &s, *frames, *dt, logger.Named("run"))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("soak failed", zap.Error(err))
	}

	for _, r := range results {
		logger.Info("run finished",
			zap.Uint64("seed", r.seed),
			zap.Uint64("frames", r.frames),
			zap.Int("score", r.score),
			zap.Int("level", r.level),
			zap.Int("kills", r.kills),
			zap.Int("best_combo", r.bestCmb),
			zap.Bool("game_over", r.gameOver))
	}
}

func soak(ctx context.Context, settings *config.Settings, frames int, dt float64, log *zap.Logger) (result, error) {
	s, err := sim.New(settings, sim.Options{
		Log:   log,
		Store: &systems.MemoryStore{},
	})
	if err != nil {
		return result{}, err
	}
	defer s.Close()

	var snap sim.Snapshot
	for f := 0; f < frames; f++ {
		if f%600 == 0 && ctx.Err() != nil {
			return result{}, ctx.Err()
		}
		snap, err = s.Tick(pilot(f, snap), dt)
		if err != nil {
			return result{}, err
		}
		if snap.State == config.StateGameOver {
			break
		}
	}

	return result{
		seed:     settings.Sim.Seed,
		frames:   snap.Frame,
		score:    snap.Score,
		level:    snap.Level,
		kills:    snap.Kills,
		bestCmb:  snap.Combo.Best,
		gameOver: snap.State == config.StateGameOver,
	}, nil
}

// pilot weaves across the playfield with the trigger held and bombs when a boss is low.
func pilot(frame int, snap sim.Snapshot) components.InputSnapshot {
	in := components.InputSnapshot{
		Move:   dmath.NewVec2(math.Sin(float64(frame)/90), 0),
		Firing: true,
	}
	if b := snap.Boss; b != nil && b.MaxHP > 0 && b.HP/b.MaxHP < 0.25 && frame%120 == 0 {
		in.Bombing = true
	}
	return in
}
