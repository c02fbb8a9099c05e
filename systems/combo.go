package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
)

const (
	BreakTimeout = "timeout"
	BreakDeath   = "death"
)

// UpdateCombo counts player kills into the streak and awards their score, then runs the
// streak timer for frames without a kill.
func UpdateCombo(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	combo := sc.Combo
	game := sc.Game
	scoreMult := orOne(sc.Difficulty.Mods.ScoreMult)

	killed := false
	events.Each(w.Events, func(k events.Kill) {
		if k.IsPlayer {
			breakCombo(w, combo, BreakDeath)
			return
		}
		if !k.FromPlayer {
			return
		}
		killed = true
		combo.Count++
		combo.TimerMs = cfg.Combo.WindowMs
		if combo.Count > combo.Best {
			combo.Best = combo.Count
		}

		if level := components.LevelFor(combo.Count); level > combo.Level {
			combo.Level = level
			events.Emit(w.Events, events.ComboUpgrade{Combo: combo.Count, Level: level})
			playSound(w, cfg.SoundComboUp)
			if level == len(cfg.Combo.Thresholds) {
				events.Emit(w.Events, events.BerserkMode{Combo: combo.Count})
				playSound(w, cfg.SoundBerserk)
			}
		}

		game.Score += KillScore(k.Score, combo.Level, scoreMult)
		game.Kills++
	})

	if killed || combo.Count == 0 {
		return nil
	}
	combo.TimerMs -= w.Dt()
	if combo.TimerMs <= 0 {
		breakCombo(w, combo, BreakTimeout)
	}
	return nil
}

// KillScore is the score awarded for a kill at a combo level.
func KillScore(base, level int, difficultyMult float64) int {
	return int(math.Round(float64(base) * cfg.Combo.ScoreMult[level] * difficultyMult))
}

func breakCombo(w *world.World, combo *components.ComboData, reason string) {
	if combo.Count == 0 {
		return
	}
	events.Emit(w.Events, events.ComboBreak{Combo: combo.Count, Reason: reason})
	playSound(w, cfg.SoundComboBreak)
	combo.Count = 0
	combo.Level = 0
	combo.TimerMs = 0
}
