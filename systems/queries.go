package systems

import (
	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// live builds a query that skips destroy-tagged entities.
func live(cs ...donburi.IComponentType) *query.Query {
	return query.NewQuery(filter.And(
		filter.Contains(cs...),
		filter.Not(filter.Contains(components.Destroy)),
	))
}

var (
	liveEnemies      = live(tags.Enemy, components.Transform, components.Health)
	liveRegulars     = live(components.Enemy, components.Transform, components.Velocity)
	liveBosses       = live(components.BossTag, components.BossAI, components.Transform, components.Velocity, components.Health)
	liveArmed        = live(components.Weapon, components.Transform)
	liveMovers       = live(components.Transform, components.Velocity)
	liveBullets      = live(components.Bullet, components.Transform)
	liveEnemyBullets = live(tags.EnemyBullet)
	liveHealth       = live(components.Health)
	liveDOT          = live(components.DamageOverTime, components.Health)
	liveShields      = live(components.Shield)
	liveSlowFields   = live(components.SlowField, components.Transform)
	liveLifetimes    = live(components.Lifetime)
	liveTints        = live(components.Tint)
	liveInvulnerable = live(components.Invulnerable)
	liveTimeSlow     = live(components.TimeSlow)
	liveSpeedMods    = live(components.SpeedModifier)
	destroyed        = query.NewQuery(filter.Contains(components.Destroy))
)

// collect snapshots the entities a query matches, so the caller can change the world
// structurally while walking them.
func collect(w *world.World, q *query.Query) []donburi.Entity {
	var out []donburi.Entity
	q.Each(w.World, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}
