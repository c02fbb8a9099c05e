package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// UpdateMovement steers homing bullets, integrates velocities, reflects bouncing bullets,
// retires projectiles that left the playfield and syncs colliders.
func UpdateMovement(w *world.World) error {
	dt := w.DtSeconds()
	margin := cfg.Bullet.OffscreenMargin

	for _, e := range collect(w, liveMovers) {
		entry := w.Entry(e)
		t := components.Transform.Get(entry)
		vel := components.Velocity.Get(entry)

		if entry.HasComponent(components.Homing) {
			steerHoming(w, entry, t, vel)
		}

		factor := 1.0
		if entry.HasComponent(components.TimeSlow) {
			factor = components.TimeSlow.Get(entry).Factor
		}
		t.X += vel.VX * dt * factor
		t.Y += vel.VY * dt * factor
		t.Rotation += vel.VRot * dt * factor

		switch {
		case entry.HasComponent(tags.Player):
			t.X = clamp(t.X, cfg.Player.Width/2, cfg.C.Width-cfg.Player.Width/2)
			t.Y = clamp(t.Y, cfg.Player.Height/2, cfg.C.Height-cfg.Player.Height/2)
		case entry.HasComponent(components.Bullet):
			b := components.Bullet.Get(entry)
			if b.Bounces > 0 && (t.X < 0 || t.X > cfg.C.Width) {
				t.X = clamp(t.X, 0, cfg.C.Width)
				vel.VX = -vel.VX
				b.Bounces--
				events.Emit(w.Events, events.Bounce{
					Bullet: e, Owner: b.Owner, Weapon: b.Weapon, X: t.X, Y: t.Y,
				})
			}
			if offscreen(t, margin) {
				w.MarkDestroyed(entry, components.ReasonOffscreen)
				continue
			}
		case entry.HasComponent(components.Pickup):
			if t.Y > cfg.C.Height+margin {
				w.MarkDestroyed(entry, components.ReasonOffscreen)
				continue
			}
		}

		syncObject(entry, t)
	}
	return nil
}

func offscreen(t *components.TransformData, margin float64) bool {
	return t.X < -margin || t.X > cfg.C.Width+margin || t.Y < -margin || t.Y > cfg.C.Height+margin
}

// syncObject moves the broad phase collider to the entity's position.
func syncObject(entry *donburi.Entry, t *components.TransformData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = t.X - obj.W/2
	obj.Y = t.Y - obj.H/2
	obj.Update()
}

// steerHoming turns a bullet toward its target, dropping a stale target and acquiring the
// nearest valid one.
func steerHoming(w *world.World, entry *donburi.Entry, t *components.TransformData, vel *components.VelocityData) {
	h := components.Homing.Get(entry)
	b := components.Bullet.Get(entry)

	var target *donburi.Entry
	if h.HasTarget {
		if te, ok := w.Alive(h.Target); ok {
			target = te
		} else {
			h.HasTarget = false
		}
	}
	if target == nil {
		if e, ok := acquireTarget(w, b.Faction, t.X, t.Y); ok {
			h.Target, h.HasTarget = e, true
			target = w.Entry(e)
		}
	}
	if target == nil {
		return
	}

	tt := components.Transform.Get(target)
	want := math.Atan2(tt.X-t.X, tt.Y-t.Y)
	have := math.Atan2(vel.VX, vel.VY)
	diff := math.Remainder(want-have, 2*math.Pi)
	maxTurn := h.TurnRate * w.DtSeconds()
	diff = clamp(diff, -maxTurn, maxTurn)
	heading := have + diff
	vel.VX = math.Sin(heading) * h.Speed
	vel.VY = math.Cos(heading) * h.Speed
	t.Rotation = heading
}

func acquireTarget(w *world.World, faction cfg.Faction, x, y float64) (donburi.Entity, bool) {
	if faction == cfg.FactionEnemy {
		if p, ok := w.Player(); ok {
			return p.Entity(), true
		}
		return 0, false
	}
	near := enemiesWithin(w, x, y, math.Inf(1))
	if len(near) == 0 {
		return 0, false
	}
	return near[0], true
}
