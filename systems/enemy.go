package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

const (
	strafeLineY     = 120 // snipers stop descending here
	kamikazeLockMs  = 600 // kamikazes drift before locking on
	fireCeilingFrac = 0.75
)

// UpdateEnemyAI steers regular enemies by behavior, aims their weapons and destroy-tags
// the ones that leave the playfield.
func UpdateEnemyAI(w *world.World) error {
	px, py, hasPlayer := playerPosition(w)
	if !hasPlayer {
		px, py = cfg.C.Width/2, cfg.C.Height
	}
	margin := cfg.Bullet.OffscreenMargin

	for _, e := range collect(w, liveRegulars) {
		entry := w.Entry(e)
		if entry.HasComponent(components.BossTag) {
			continue
		}
		en := components.Enemy.Get(entry)
		en.AgeMs += w.Dt()
		et, ok := cfg.LookupEnemy(en.Kind)
		if !ok {
			continue
		}

		t := components.Transform.Get(entry)
		vel := components.Velocity.Get(entry)
		speed := EffectiveMaxSpeed(entry)
		age := en.AgeMs / 1000

		behavior := en.Behavior
		if behavior == cfg.BehaviorEscort && !steerEscort(w, entry, t, vel, speed) {
			behavior = cfg.BehaviorChase
		}

		switch behavior {
		case cfg.BehaviorStraight:
			vel.VX, vel.VY = 0, speed
		case cfg.BehaviorSine:
			omega := 2 * math.Pi * et.Frequency
			vel.VX = et.Amplitude * omega * math.Cos(omega*age)
			vel.VY = speed
		case cfg.BehaviorChase:
			vel.VX = clamp((px-t.X)*2, -speed, speed)
			vel.VY = speed * 0.6
		case cfg.BehaviorStrafe:
			omega := 2 * math.Pi * et.Frequency
			vel.VX = et.Amplitude * omega * math.Cos(omega*age)
			if t.Y < strafeLineY {
				vel.VY = speed
			} else {
				vel.VY = 0
			}
		case cfg.BehaviorKamikaze:
			if en.AgeMs < kamikazeLockMs {
				vel.VX, vel.VY = 0, speed*0.4
			} else {
				dx, dy := px-t.X, py-t.Y
				if d := math.Hypot(dx, dy); d > 0 {
					vel.VX, vel.VY = dx/d*speed, dy/d*speed
				}
			}
		}

		if entry.HasComponent(components.Weapon) {
			wd := components.Weapon.Get(entry)
			wd.Trigger = hasPlayer && t.Y > 0 && t.Y < cfg.C.Height*fireCeilingFrac
			if wd.Pattern == cfg.PatternAimed {
				wd.Aim = factory.AngleTo(t.X, t.Y, px, py)
			} else {
				wd.Aim = 0
			}
		}

		if t.Y > cfg.C.Height+margin || t.X < -margin || t.X > cfg.C.Width+margin {
			w.MarkDestroyed(entry, components.ReasonEscaped)
		}
	}
	return nil
}

// steerEscort orbits a wingman around its boss. A boss that is gone clears the reference
// and reports false so the caller falls back to chasing.
func steerEscort(w *world.World, entry *donburi.Entry, t *components.TransformData, vel *components.VelocityData, speed float64) bool {
	if !entry.HasComponent(components.Escort) {
		return false
	}
	esc := components.Escort.Get(entry)
	if !esc.HasBoss {
		return false
	}
	boss, ok := w.Alive(esc.Boss)
	if !ok {
		esc.HasBoss = false
		return false
	}

	esc.Angle += cfg.Enemy.EscortOrbitSpeed * w.DtSeconds()
	bt := components.Transform.Get(boss)
	tx := bt.X + cfg.Enemy.EscortOrbitRadius*math.Cos(esc.Angle)
	ty := bt.Y + cfg.Enemy.EscortOrbitRadius*math.Sin(esc.Angle)
	if dt := w.DtSeconds(); dt > 0 {
		vel.VX, vel.VY = capVelocity((tx-t.X)/dt, (ty-t.Y)/dt, speed*2)
	} else {
		vel.VX, vel.VY = 0, 0
	}
	return true
}
