package sim

import (
	"fmt"
	"math"

	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/pipeline"
	"github.com/automoto/skyraid/scripting"
	"github.com/automoto/skyraid/systems"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options carries the collaborators a simulation is built with. All fields are optional.
type Options struct {
	Log *zap.Logger
	// Store persists maxLevelReached. Nil runs without persistence.
	Store systems.ProgressStore
	// Formula replaces the built-in performance score. When nil and the settings name a
	// script, the script's performance_score is used.
	Formula systems.PerformanceFunc
}

// Simulation owns one world and the pipeline that advances it.
type Simulation struct {
	world    *world.World
	runner   *pipeline.Runner
	settings *config.Settings
	log      *zap.Logger
	runID    uuid.UUID
	engine   *scripting.Engine

	snapshot Snapshot
}

// New builds a world at the configured start level with a player and the full pipeline.
func New(settings *config.Settings, opts Options) (*Simulation, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.New()
	log = log.With(zap.String("run", runID.String()))

	if settings.Tables != "" {
		if err := config.LoadTables(settings.Tables); err != nil {
			return nil, err
		}
	}

	s := &Simulation{
		settings: settings,
		log:      log,
		runID:    runID,
	}

	formula := opts.Formula
	if formula == nil && settings.Scripts != "" {
		engine, err := scripting.NewEngine(settings.Scripts, log)
		if err != nil {
			return nil, err
		}
		s.engine = engine
		formula = engine.Score
	}

	maxLevel := 0
	if opts.Store != nil {
		lvl, err := opts.Store.LoadMaxLevel()
		if err != nil {
			log.Warn("could not load progress", zap.Error(err))
		} else {
			maxLevel = lvl
		}
	}

	s.world = world.New(settings.Sim.Seed, log)
	factory.CreateGlobals(s.world, settings.Sim.StartLevel, maxLevel, settings.Difficulty.Adaptive)
	if _, err := factory.CreatePlayer(s.world); err != nil {
		s.Close()
		return nil, fmt.Errorf("create player: %w", err)
	}

	s.runner = pipeline.NewRunner()
	s.runner.Register(systems.Pipeline(systems.Options{
		Store:   opts.Store,
		Formula: formula,
	})...)
	s.runner.Register(pipeline.System{Name: "snapshot", Layer: pipeline.LayerRender, Run: s.capture})

	log.Info("simulation started",
		zap.Uint64("seed", settings.Sim.Seed),
		zap.Int("level", settings.Sim.StartLevel),
		zap.Int("max_level", maxLevel))
	return s, nil
}

// Tick advances the world by one frame. dt is clamped to [0, MaxFrameMs]. On error the
// previous snapshot is returned with it.
func (s *Simulation) Tick(in components.InputSnapshot, dtMs float64) (Snapshot, error) {
	if math.IsNaN(dtMs) || dtMs < 0 {
		dtMs = 0
	}
	if dtMs > s.settings.Sim.MaxFrameMs {
		dtMs = s.settings.Sim.MaxFrameMs
	}

	sc, err := s.world.Scalars()
	if err != nil {
		return s.snapshot, err
	}
	sc.Input.Current = in

	if err := s.runner.Tick(s.world, dtMs); err != nil {
		s.log.Error("tick aborted", zap.Uint64("frame", s.world.Frame()), zap.Error(err))
		return s.snapshot, fmt.Errorf("frame %d: %w", s.world.Frame(), err)
	}
	return s.snapshot, nil
}

func (s *Simulation) capture(w *world.World) error {
	snap, err := capture(w, s.runID.String())
	if err != nil {
		return err
	}
	s.snapshot = snap
	return nil
}

// Snapshot returns the snapshot of the last completed tick.
func (s *Simulation) Snapshot() Snapshot { return s.snapshot }

// SetAdaptiveDifficulty toggles adaptive difficulty at runtime.
func (s *Simulation) SetAdaptiveDifficulty(enabled bool) error {
	return systems.SetDifficultyEnabled(s.world, enabled)
}

// Order lists the systems in the order they run.
func (s *Simulation) Order() []string { return s.runner.Order() }

// World exposes the underlying world to debug tooling.
func (s *Simulation) World() *world.World { return s.world }

func (s *Simulation) RunID() uuid.UUID { return s.runID }

// Close releases the scripting VM, if any.
func (s *Simulation) Close() {
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
}
