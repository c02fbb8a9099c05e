package systems

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// upsert sets a component, adding it first when the entity lacks it.
func upsert[T any](entry *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if entry.HasComponent(c) {
		c.SetValue(entry, v)
		return
	}
	donburi.Add(entry, c, &v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// WeightedPick returns the index chosen with probability weight/total, or -1 when no
// weight is positive.
func WeightedPick(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, wt := range weights {
		if wt > 0 {
			total += wt
		}
	}
	if total <= 0 {
		return -1
	}
	roll := r.Float64() * total
	for i, wt := range weights {
		if wt <= 0 {
			continue
		}
		if roll < wt {
			return i
		}
		roll -= wt
	}
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// EffectiveMaxSpeed is the speed cap after overrides and modifiers.
func EffectiveMaxSpeed(entry *donburi.Entry) float64 {
	if entry.HasComponent(components.SpeedOverride) {
		return components.SpeedOverride.Get(entry).MaxLinear
	}
	if !entry.HasComponent(components.SpeedStat) {
		return 0
	}
	s := components.SpeedStat.Get(entry).MaxLinear
	if entry.HasComponent(components.SpeedModifier) {
		s *= components.SpeedModifier.Get(entry).Multiplier
	}
	return s
}

// capVelocity scales a velocity down to max speed.
func capVelocity(vx, vy, limit float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if limit <= 0 {
		return 0, 0
	}
	if speed > limit {
		k := limit / speed
		return vx * k, vy * k
	}
	return vx, vy
}

func playSound(w *world.World, id cfg.SoundID) {
	events.Emit(w.Events, events.PlaySound{Sound: id})
}

func shake(w *world.World, intensity float64) {
	events.Emit(w.Events, events.CamShake{Intensity: intensity, DurationMs: cfg.Damage.ShakeDurationMs})
}

// clearEnemyBullets destroy-tags every enemy bullet and reports how many were cleared.
func clearEnemyBullets(w *world.World) int {
	n := 0
	for _, e := range collect(w, liveEnemyBullets) {
		if w.MarkDestroyed(w.Entry(e), components.ReasonCleared) {
			n++
		}
	}
	return n
}

// playerPosition returns the live player's position.
func playerPosition(w *world.World) (float64, float64, bool) {
	p, ok := w.Player()
	if !ok {
		return 0, 0, false
	}
	t := components.Transform.Get(p)
	return t.X, t.Y, true
}

// enemiesWithin returns live enemies whose centre lies within radius of x, y, nearest first.
func enemiesWithin(w *world.World, x, y, radius float64) []donburi.Entity {
	type hit struct {
		e    donburi.Entity
		dist float64
	}
	var found []hit
	for _, e := range collect(w, liveEnemies) {
		t := components.Transform.Get(w.Entry(e))
		d := math.Hypot(t.X-x, t.Y-y)
		if d <= radius {
			found = append(found, hit{e, d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })
	out := make([]donburi.Entity, len(found))
	for i, f := range found {
		out[i] = f.e
	}
	return out
}
