package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// UpdateBossMovement flies bosses in and then drives them with their phase's movement
// pattern. Entrance and pattern movement never run in the same tick.
func UpdateBossMovement(w *world.World) error {
	px, py, hasPlayer := playerPosition(w)
	if !hasPlayer {
		px, py = cfg.C.Width/2, cfg.C.Height*0.8
	}

	for _, e := range collect(w, liveBosses) {
		entry := w.Entry(e)
		if entry.HasComponent(components.BossEntrance) {
			updateEntrance(w, entry)
			continue
		}

		bt, ok := cfg.LookupBoss(components.BossTag.Get(entry).Kind)
		if !ok {
			continue
		}
		ai := components.BossAI.Get(entry)
		ai.MoveTimerMs += w.Dt()
		phase := bt.Phases[ai.PhaseIndex]

		t := components.Transform.Get(entry)
		vel := components.Velocity.Get(entry)

		if phase.Movement == cfg.MoveTeleport {
			t.X, t.Y = PatternTarget(phase.Movement, ai, bt, t.X, t.Y, px, py)
			vel.VX, vel.VY = 0, 0
			continue
		}

		tx, ty := PatternTarget(phase.Movement, ai, bt, t.X, t.Y, px, py)
		if w.DtSeconds() <= 0 {
			vel.VX, vel.VY = 0, 0
			continue
		}
		vel.VX, vel.VY = capVelocity((tx-t.X)/w.DtSeconds(), (ty-t.Y)/w.DtSeconds(), EffectiveMaxSpeed(entry))
	}
	return nil
}

// updateEntrance moves a boss straight down until it reaches its target Y, then removes
// the entrance marker and its speed override together.
func updateEntrance(w *world.World, entry *donburi.Entry) {
	ent := components.BossEntrance.Get(entry)
	t := components.Transform.Get(entry)
	vel := components.Velocity.Get(entry)

	remaining := ent.TargetY - t.Y
	if math.Abs(remaining) <= cfg.Boss.EntranceEpsilon {
		t.Y = ent.TargetY
		vel.VX, vel.VY = 0, 0
		ai := components.BossAI.Get(entry)
		ai.AnchorX, ai.AnchorY = t.X, t.Y
		ai.MoveTimerMs = 0
		entry.RemoveComponent(components.BossEntrance)
		entry.RemoveComponent(components.SpeedOverride)
		return
	}

	speed := math.Min(ent.Speed, EffectiveMaxSpeed(entry))
	if dt := w.DtSeconds(); dt > 0 {
		speed = math.Min(speed, math.Abs(remaining)/dt)
	}
	vel.VX = 0
	vel.VY = math.Copysign(speed, remaining)
}

// PatternTarget is the closed-form position of a movement pattern at the boss's move
// timer. x, y is the current position; px, py the player.
func PatternTarget(m cfg.MovementPattern, ai *components.BossAIData, bt cfg.BossTypeConfig, x, y, px, py float64) (float64, float64) {
	s := ai.MoveTimerMs / 1000
	ax, ay := ai.AnchorX, ai.AnchorY
	a := bt.Amplitude

	var tx, ty float64
	switch m {
	case cfg.MoveSine:
		tx, ty = ax+a*math.Sin(s*0.8), ay
	case cfg.MoveFigure8:
		tx, ty = ax+a*math.Sin(s*0.9), ay+40*math.Sin(2*s*0.9)
	case cfg.MoveCircular:
		tx, ty = ax+a*0.6*math.Cos(s), ay+60*math.Sin(s)
	case cfg.MoveZigzag:
		tx, ty = ax+a*triangle(s/2.5), ay+20*triangle(s/1.2)
	case cfg.MoveTracking:
		tx, ty = px, ay
	case cfg.MoveTeleport:
		slot := math.Floor(ai.MoveTimerMs / cfg.Boss.TeleportEveryMs)
		tx, ty = ax+a*math.Sin(slot*2.39996), ay+30*math.Cos(slot*1.7)
	case cfg.MoveAdaptive:
		dx := px - x
		if math.Hypot(dx, py-y) < cfg.Boss.AdaptiveRange {
			tx = x - math.Copysign(a*0.5, dx)
		} else {
			tx = px
		}
		ty = ay
	case cfg.MoveSlowDescent:
		tx, ty = ax+a*0.5*math.Sin(s*0.5), ay+math.Min(s*6, 160)
	case cfg.MoveAggressive:
		tx, ty = ax+a*math.Sin(s*1.6), ay+50+40*math.Sin(s*2.3)
	default:
		tx, ty = ax, ay
	}

	half := bt.Width / 2
	tx = clamp(tx, half, cfg.C.Width-half)
	ty = clamp(ty, bt.Height/2, cfg.C.Height*0.6)
	return tx, ty
}

// triangle is a unit triangle wave in [-1, 1] with period 1.
func triangle(v float64) float64 {
	f := v - math.Floor(v)
	return 4*math.Abs(f-0.5) - 1
}
