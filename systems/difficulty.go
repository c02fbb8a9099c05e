package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
	"go.uber.org/zap"
)

// PerformanceInputs are the normalized terms a difficulty evaluation blends. Each is in [0, 1].
type PerformanceInputs struct {
	HealthFrac float64
	WeaponFrac float64
	ComboFrac  float64
	TimeFrac   float64
}

// PerformanceFunc computes a performance score from the inputs.
type PerformanceFunc func(PerformanceInputs) (float64, error)

// PerformanceScore is the built-in weighted blend.
func PerformanceScore(in PerformanceInputs) float64 {
	d := cfg.Difficulty
	return clamp(d.HealthWeight*in.HealthFrac+
		d.WeaponWeight*in.WeaponFrac+
		d.ComboWeight*in.ComboFrac+
		d.TimeWeight*in.TimeFrac, 0, 1)
}

// ModeFor maps a performance score to a difficulty mode.
func ModeFor(score float64) cfg.DifficultyMode {
	switch {
	case score >= cfg.Difficulty.HighThreshold:
		return cfg.DifficultyEasy
	case score <= cfg.Difficulty.LowThreshold:
		return cfg.DifficultyHard
	default:
		return cfg.DifficultyNormal
	}
}

// Difficulty evaluates player performance on a fixed interval and picks the modifiers
// the spawn, enemy and loot systems read.
type Difficulty struct {
	formula PerformanceFunc
}

// NewDifficulty creates the system. A nil formula uses PerformanceScore.
func NewDifficulty(formula PerformanceFunc) *Difficulty {
	return &Difficulty{formula: formula}
}

func (d *Difficulty) Update(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	diff := sc.Difficulty
	if !diff.Enabled {
		if diff.Mode != cfg.DifficultyNormal {
			setMode(w, diff, cfg.DifficultyNormal, diff.LastScore)
		}
		return nil
	}
	if sc.Game.State == cfg.StateGameOver {
		return nil
	}

	diff.EvalTimerMs += w.Dt()
	if diff.EvalTimerMs < cfg.Difficulty.EvalIntervalMs {
		return nil
	}
	diff.EvalTimerMs -= cfg.Difficulty.EvalIntervalMs

	in := performanceInputs(w, sc)
	score := PerformanceScore(in)
	if d.formula != nil {
		s, err := d.formula(in)
		if err != nil || math.IsNaN(s) {
			w.Log.Warn("performance formula failed, using built-in score", zap.Error(err))
		} else {
			score = clamp(s, 0, 1)
		}
	}
	diff.LastScore = score

	if mode := ModeFor(score); mode != diff.Mode {
		setMode(w, diff, mode, score)
	}
	return nil
}

// SetDifficultyEnabled toggles adaptive difficulty. Disabling forces NORMAL immediately.
func SetDifficultyEnabled(w *world.World, enabled bool) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	sc.Difficulty.Enabled = enabled
	sc.Difficulty.EvalTimerMs = 0
	if !enabled && sc.Difficulty.Mode != cfg.DifficultyNormal {
		setMode(w, sc.Difficulty, cfg.DifficultyNormal, sc.Difficulty.LastScore)
	}
	return nil
}

func setMode(w *world.World, diff *components.DifficultyData, mode cfg.DifficultyMode, score float64) {
	from := diff.Mode
	diff.Mode = mode
	diff.Mods = cfg.ModifiersFor(mode)
	events.Emit(w.Events, events.DifficultyChanged{From: from, To: mode, Score: score})
	w.Log.Info("difficulty changed",
		zap.Stringer("from", from),
		zap.Stringer("to", mode),
		zap.Float64("score", score))
}

func performanceInputs(w *world.World, sc *world.Scalars) PerformanceInputs {
	var in PerformanceInputs
	if p, ok := w.Player(); ok {
		in.HealthFrac = components.Health.Get(p).Fraction()

		levels := float64(components.Weapon.Get(p).Level)
		n := 1.0
		if p.HasComponent(components.SecondaryWeapon) {
			levels += float64(components.SecondaryWeapon.Get(p).Level)
			n++
		}
		if cfg.Weapon.MaxLevel > 0 {
			in.WeaponFrac = clamp(levels/n/float64(cfg.Weapon.MaxLevel), 0, 1)
		}
	}
	in.ComboFrac = float64(sc.Combo.Level) / float64(len(cfg.Combo.Thresholds))
	if cfg.Difficulty.StandardLevelMs > 0 {
		in.TimeFrac = math.Min(1, sc.Game.LevelElapsedMs/cfg.Difficulty.StandardLevelMs)
	}
	return in
}
