package factory

import (
	"math"

	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// BulletSpec describes one projectile. Angle is in radians with 0 pointing down the
// screen and math.Pi pointing up.
type BulletSpec struct {
	Owner   donburi.Entity
	Faction cfg.Faction
	Weapon  cfg.WeaponKind
	X, Y    float64
	Angle   float64
	Damage  float64
}

// Direction converts an aim angle to a unit vector.
func Direction(angle float64) (float64, float64) {
	return math.Sin(angle), math.Cos(angle)
}

// AngleTo returns the aim angle from one point toward another.
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toX-fromX, toY-fromY)
}

// CreateBullet spawns a projectile using the weapon table for speed, size and traits.
func CreateBullet(w *world.World, spec BulletSpec) (*donburi.Entry, bool) {
	wc, ok := cfg.LookupWeapon(spec.Weapon)
	if !ok {
		return nil, false
	}

	var b *donburi.Entry
	resolvTag := tags.ResolvPlayerBullet
	if spec.Faction == cfg.FactionEnemy {
		resolvTag = tags.ResolvEnemyBullet
		b = archetypes.Bullet.Spawn(w.World, tags.EnemyBullet)
	} else {
		b = archetypes.Bullet.Spawn(w.World)
	}
	obj := newObject(w, spec.X, spec.Y, wc.BulletW, wc.BulletH, resolvTag)
	obj.Data = b.Entity()
	components.Object.SetValue(b, components.ObjectData{Object: obj})

	dx, dy := Direction(spec.Angle)
	components.Transform.SetValue(b, components.TransformData{X: spec.X, Y: spec.Y, Rotation: spec.Angle})
	components.Velocity.SetValue(b, components.VelocityData{VX: dx * wc.BulletSpeed, VY: dy * wc.BulletSpeed})
	components.Lifetime.SetValue(b, components.LifetimeData{RemainingMs: wc.LifetimeMs})
	components.Bullet.SetValue(b, components.BulletData{
		Owner:    spec.Owner,
		Faction:  spec.Faction,
		Weapon:   spec.Weapon,
		Damage:   spec.Damage,
		Pierce:   wc.Pierce,
		Bounces:  wc.Bounces,
		Explodes: wc.Explodes,
		Radius:   wc.Radius,
	})

	if wc.Pattern == cfg.PatternHoming {
		donburi.Add(b, components.Homing, &components.HomingData{
			TurnRate: wc.TurnRate,
			Speed:    wc.BulletSpeed,
		})
	}
	return b, true
}
