package systems

import (
	"math/rand/v2"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
)

// UpdateLoot rolls the drop table of every Kill that carries one. When nothing dropped
// for the pity window, the next roll excludes the Nothing outcome.
func UpdateLoot(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	loot := sc.Loot
	loot.SinceDropMs += w.Dt()
	powerups := orOne(sc.Difficulty.Mods.PowerupDropMult)
	r := w.Rand("loot")

	events.Each(w.Events, func(k events.Kill) {
		if k.IsPlayer || len(k.Drops) == 0 {
			return
		}
		pity := loot.SinceDropMs >= cfg.Loot.PityMs
		item := RollDrop(r, k.Drops, powerups, pity)
		if item == cfg.ItemNothing {
			return
		}
		factory.CreatePickup(w, item, k.X, k.Y)
		loot.SinceDropMs = 0
	})
	return nil
}

// RollDrop picks an outcome from a drop table. Powerup weights are scaled by powerupMult;
// excludeNothing removes the Nothing outcome.
func RollDrop(r *rand.Rand, drops []cfg.DropEntry, powerupMult float64, excludeNothing bool) cfg.ItemKind {
	weights := make([]float64, len(drops))
	for i, d := range drops {
		wt := float64(d.Weight)
		switch {
		case d.Item == cfg.ItemNothing && excludeNothing:
			wt = 0
		case d.Item.Powerup():
			wt *= powerupMult
		}
		weights[i] = wt
	}
	i := WeightedPick(r, weights)
	if i < 0 {
		return cfg.ItemNothing
	}
	return drops[i].Item
}
