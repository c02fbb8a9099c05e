package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

type blame struct {
	source     donburi.Entity
	fromPlayer bool
}

// UpdateDamage resolves this frame's hits and damage over time, shield first, then tags
// every entity whose health reached zero and publishes exactly one Kill for it.
func UpdateDamage(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	synergy := activeSynergy(w)

	tickDamageOverTime(w)

	events.Each(w.Events, func(ev events.Explosion) {
		applyEffects(w, synergy, cfg.TriggerExplode, ev.Weapon, donburi.Entity(0), false, ev.X, ev.Y, ev.Radius, ev.Owner)
	})
	events.Each(w.Events, func(ev events.Bounce) {
		applyEffects(w, synergy, cfg.TriggerBounce, ev.Weapon, donburi.Entity(0), false, ev.X, ev.Y, 0, ev.Owner)
	})

	killers := make(map[donburi.Entity]blame)
	events.Each(w.Events, func(h events.Hit) {
		victim, ok := w.Alive(h.Victim)
		if !ok || !victim.HasComponent(components.Health) {
			return
		}
		if victim.HasComponent(components.Invulnerable) {
			return
		}

		dmg := h.Damage
		if h.FromPlayer && (h.Kind == events.HitDirect || h.Kind == events.HitExplosion) {
			dmg *= cfg.Combo.DamageMult[sc.Combo.Level]
		}
		if h.FromPlayer && h.Kind == events.HitDirect {
			for _, eff := range triggerFor(w, synergy, cfg.TriggerHit, h.Weapon) {
				if eff.Kind == cfg.EffectDamageMultiplier {
					dmg *= eff.Value
					continue
				}
				applyEffect(w, eff, h.Victim, true, h.X, h.Y, 0, h.Source)
			}
		}

		ApplyDamage(w, victim, dmg)
		killers[h.Victim] = blame{source: h.Source, fromPlayer: h.FromPlayer}

		if victim.HasComponent(tags.Player) {
			shake(w, cfg.Damage.PlayerHitShake)
			playSound(w, cfg.SoundHit)
		} else if dmg >= cfg.Damage.ShakeThreshold {
			shake(w, math.Min(dmg*cfg.Damage.ShakePerDamage, cfg.Damage.ShakeMax))
		}
	})

	resolveDeaths(w, killers)
	return nil
}

// ApplyDamage subtracts damage from the shield first and the remainder from health.
// A shield emptied by the hit reports its break once.
func ApplyDamage(w *world.World, victim *donburi.Entry, dmg float64) {
	if dmg <= 0 {
		return
	}
	if victim.HasComponent(components.Shield) {
		s := components.Shield.Get(victim)
		s.SinceHitMs = 0
		if s.Value > 0 {
			if dmg <= s.Value {
				s.Value -= dmg
				dmg = 0
			} else {
				dmg -= s.Value
				s.Value = 0
			}
			if s.Value == 0 && !s.Broken {
				s.Broken = true
				events.Emit(w.Events, events.ShieldBreak{Entity: victim.Entity()})
				playSound(w, cfg.SoundShieldBreak)
				shake(w, cfg.Damage.ShieldBreakShake)
			}
		}
	}
	if dmg <= 0 {
		return
	}
	h := components.Health.Get(victim)
	h.HP -= dmg
	h.Clamp()
}

// tickDamageOverTime emits burn hits on each DOT interval and drops expired DOTs.
func tickDamageOverTime(w *world.World) {
	for _, e := range collect(w, liveDOT) {
		entry := w.Entry(e)
		dot := components.DamageOverTime.Get(entry)
		interval := dot.IntervalMs
		if interval <= 0 {
			interval = cfg.Damage.DOTIntervalMs
		}
		step := math.Min(w.Dt(), math.Max(dot.RemainingMs, 0))
		dot.TickTimerMs += step
		dot.RemainingMs -= w.Dt()
		t := components.Transform.Get(entry)
		for dot.TickTimerMs >= interval {
			dot.TickTimerMs -= interval
			events.Emit(w.Events, events.Hit{
				Victim:     e,
				Source:     dot.Source,
				Damage:     dot.DamagePerTick,
				Kind:       events.HitBurn,
				X:          t.X,
				Y:          t.Y,
				FromPlayer: true,
			})
		}
		if dot.RemainingMs <= 0 {
			entry.RemoveComponent(components.DamageOverTime)
		}
	}
}

// resolveDeaths tags every live entity at zero health and publishes its Kill.
func resolveDeaths(w *world.World, killers map[donburi.Entity]blame) {
	for _, e := range collect(w, liveHealth) {
		entry := w.Entry(e)
		if components.Health.Get(entry).HP > 0 {
			continue
		}
		if !w.MarkDestroyed(entry, components.ReasonKilled) {
			continue
		}

		k := events.Kill{Victim: e, Score: cfg.Enemy.DefaultScore}
		if b, ok := killers[e]; ok {
			k.Killer, k.FromPlayer = b.source, b.fromPlayer
		}
		if entry.HasComponent(components.ScoreValue) {
			k.Score = components.ScoreValue.Get(entry).Value
		}
		if entry.HasComponent(components.Transform) {
			t := components.Transform.Get(entry)
			k.X, k.Y = t.X, t.Y
		}
		if entry.HasComponent(components.DropTable) {
			k.Drops = components.DropTable.Get(entry).Entries
		}
		if entry.HasComponent(components.Enemy) {
			en := components.Enemy.Get(entry)
			k.Enemy, k.Elite = en.Kind, en.Elite
		}
		k.IsBoss = entry.HasComponent(components.BossTag)
		k.IsPlayer = entry.HasComponent(tags.Player)
		if k.IsPlayer {
			k.Score = 0
		}

		events.Emit(w.Events, k)
		if k.IsPlayer || k.IsBoss {
			playSound(w, cfg.SoundDeath)
			shake(w, cfg.Damage.ShakeMax)
		} else {
			playSound(w, cfg.SoundExplosion)
		}
	}
}

func activeSynergy(w *world.World) cfg.SynergyKind {
	p, ok := w.Player()
	if !ok {
		return cfg.SynergyNone
	}
	return components.Loadout.Get(p).Synergy
}

func triggerFor(w *world.World, synergy cfg.SynergyKind, trigger cfg.TriggerKind, weapon cfg.WeaponKind) []Effect {
	if synergy == cfg.SynergyNone {
		return nil
	}
	return TryTrigger(synergy, TriggerContext{
		Weapon:  weapon,
		Trigger: trigger,
		Roll:    w.Rand("synergy").Float64(),
	})
}

func applyEffects(w *world.World, synergy cfg.SynergyKind, trigger cfg.TriggerKind, weapon cfg.WeaponKind, victim donburi.Entity, hasVictim bool, x, y, radius float64, source donburi.Entity) {
	for _, eff := range triggerFor(w, synergy, trigger, weapon) {
		applyEffect(w, eff, victim, hasVictim, x, y, radius, source)
	}
}

// applyEffect carries out one synergy effect at x, y. Area effects use the effect radius,
// falling back to areaRadius.
func applyEffect(w *world.World, eff Effect, victim donburi.Entity, hasVictim bool, x, y, areaRadius float64, source donburi.Entity) {
	switch eff.Kind {
	case cfg.EffectChainLightning:
		jumps := 0
		fx, fy := x, y
		for _, e := range enemiesWithin(w, x, y, eff.Radius) {
			if jumps >= eff.Targets {
				break
			}
			if hasVictim && e == victim {
				continue
			}
			t := components.Transform.Get(w.Entry(e))
			factory.CreateBeam(w, fx, fy, t.X, t.Y)
			fx, fy = t.X, t.Y
			events.Emit(w.Events, events.Hit{
				Victim:     e,
				Source:     source,
				Damage:     eff.Value,
				Kind:       events.HitChain,
				X:          t.X,
				Y:          t.Y,
				FromPlayer: true,
			})
			jumps++
		}
	case cfg.EffectBurn:
		var targets []donburi.Entity
		if hasVictim {
			targets = append(targets, victim)
		} else {
			targets = enemiesWithin(w, x, y, areaRadius)
		}
		for _, e := range targets {
			entry, ok := w.Alive(e)
			if !ok {
				continue
			}
			upsert(entry, components.DamageOverTime, components.DamageOverTimeData{
				DamagePerTick: eff.Value,
				IntervalMs:    cfg.Damage.DOTIntervalMs,
				RemainingMs:   eff.DurationMs,
				Source:        source,
			})
		}
	case cfg.EffectShieldRestore:
		if p, ok := w.Player(); ok {
			components.Shield.Get(p).Restore(eff.Value)
			if eff.DurationMs > 0 {
				upsert(p, components.Invulnerable, components.InvulnerableData{RemainingMs: eff.DurationMs})
			}
		}
	case cfg.EffectSlowField:
		r := eff.Radius
		if r <= 0 {
			r = areaRadius
		}
		factory.CreateSlowField(w, x, y, r, eff.Value, eff.DurationMs)
	case cfg.EffectSpeedBoost:
		if p, ok := w.Player(); ok {
			upsert(p, components.SpeedModifier, components.SpeedModifierData{
				Multiplier:  eff.Value,
				RemainingMs: eff.DurationMs,
			})
		}
	}
}
