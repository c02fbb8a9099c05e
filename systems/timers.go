package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// UpdateClock advances the run and level clocks.
func UpdateClock(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	if sc.Game.State == cfg.StateGameOver {
		return nil
	}
	sc.Game.ElapsedMs += w.Dt()
	if !sc.Game.BossActive {
		sc.Game.LevelElapsedMs += w.Dt()
	}
	return nil
}

// UpdateTimers ticks buffs, shield regeneration, tint fades and slow fields. Buffs whose
// remaining time runs out are removed.
func UpdateTimers(w *world.World) error {
	dt := w.Dt()

	applySlowFields(w)

	for _, e := range collect(w, liveInvulnerable) {
		entry := w.Entry(e)
		inv := components.Invulnerable.Get(entry)
		inv.RemainingMs -= dt
		if inv.RemainingMs <= 0 {
			entry.RemoveComponent(components.Invulnerable)
		}
	}

	for _, e := range collect(w, liveTimeSlow) {
		entry := w.Entry(e)
		ts := components.TimeSlow.Get(entry)
		ts.RemainingMs -= dt
		if ts.RemainingMs <= 0 {
			entry.RemoveComponent(components.TimeSlow)
		}
	}

	for _, e := range collect(w, liveSpeedMods) {
		entry := w.Entry(e)
		sm := components.SpeedModifier.Get(entry)
		sm.RemainingMs -= dt
		if sm.RemainingMs <= 0 {
			entry.RemoveComponent(components.SpeedModifier)
		}
	}

	liveShields.Each(w.World, func(entry *donburi.Entry) {
		s := components.Shield.Get(entry)
		s.SinceHitMs += dt
		if s.SinceHitMs >= s.RegenDelayMs && s.Value < s.Max {
			s.Restore(s.RegenPerSec * w.DtSeconds())
		}
	})

	for _, e := range collect(w, liveTints) {
		entry := w.Entry(e)
		tint := components.Tint.Get(entry)
		if tint.Fade == nil {
			continue
		}
		alpha, done := tint.Fade.Update(float32(w.DtSeconds()))
		tint.Alpha = alpha
		if done {
			restoreTint(entry)
		}
	}

	if p, ok := w.Player(); ok {
		pd := components.Player.Get(p)
		if pd.ContactCooldownMs > 0 {
			pd.ContactCooldownMs -= dt
		}
	}
	return nil
}

// restoreTint drops a finished fade. Elites keep their constant tint.
func restoreTint(entry *donburi.Entry) {
	if entry.HasComponent(components.Enemy) && components.Enemy.Get(entry).Elite {
		components.Tint.SetValue(entry, components.TintData{Color: cfg.Enemy.EliteTint, Alpha: 0.5})
		return
	}
	entry.RemoveComponent(components.Tint)
}

// applySlowFields refreshes TimeSlow on every enemy inside an active slow field.
func applySlowFields(w *world.World) {
	for _, f := range collect(w, liveSlowFields) {
		field := w.Entry(f)
		sf := components.SlowField.Get(field)
		ft := components.Transform.Get(field)
		for _, e := range enemiesWithin(w, ft.X, ft.Y, sf.Radius) {
			upsert(w.Entry(e), components.TimeSlow, components.TimeSlowData{
				Factor:      sf.Factor,
				RemainingMs: w.Dt() + 1,
			})
		}
	}
}
