package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// UpdateBossCombat aims boss weapons at the player and runs periodic summons. Bosses still
// entering hold fire.
func UpdateBossCombat(w *world.World) error {
	px, py, hasPlayer := playerPosition(w)

	var summons []donburi.Entity
	for _, e := range collect(w, liveBosses) {
		entry := w.Entry(e)
		wd := components.Weapon.Get(entry)
		if entry.HasComponent(components.BossEntrance) {
			wd.Trigger = false
			continue
		}

		ai := components.BossAI.Get(entry)
		ai.PhaseTimerMs += w.Dt()

		t := components.Transform.Get(entry)
		wd.Trigger = true
		if hasPlayer {
			wd.Aim = factory.AngleTo(t.X, t.Y, px, py)
		} else {
			wd.Aim = 0
		}

		bt, ok := cfg.LookupBoss(components.BossTag.Get(entry).Kind)
		if !ok {
			continue
		}
		if every := bt.Phases[ai.PhaseIndex].SummonEveryMs; every > 0 {
			ai.SummonTimerMs += w.Dt()
			if ai.SummonTimerMs >= every {
				ai.SummonTimerMs = math.Mod(ai.SummonTimerMs, every)
				summons = append(summons, e)
			}
		}
	}

	for _, boss := range summons {
		summonWingmen(w, boss)
	}
	return nil
}
