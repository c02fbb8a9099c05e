package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreateEnemy spawns a regular enemy scaled by the difficulty modifiers. A kind missing
// from the table is logged and skipped.
func CreateEnemy(w *world.World, kind cfg.EnemyKind, x, y float64, elite bool, mods cfg.DifficultyModifiers) (*donburi.Entry, bool) {
	et, ok := cfg.LookupEnemy(kind)
	if !ok {
		w.Log.Warn("enemy kind missing from table, spawn skipped", zap.Stringer("kind", kind))
		return nil, false
	}

	enemy := archetypes.Enemy.Spawn(w.World)

	hp := et.Health * orOne(mods.EnemyHealthMult)
	speed := et.Speed * orOne(mods.EnemySpeedMult)
	score := et.Score
	drops := et.Drops
	if elite {
		hp *= cfg.Enemy.EliteHealthMult
		speed *= cfg.Enemy.EliteSpeedMult
		score = int(float64(score) * cfg.Enemy.EliteScoreMult)
		drops = cfg.Enemy.EliteDrops
		donburi.Add(enemy, components.Tint, &components.TintData{Color: cfg.Enemy.EliteTint, Alpha: 0.5})
	}

	obj := newObject(w, x, y, et.Width, et.Height, tags.ResolvEnemy)
	obj.Data = enemy.Entity()
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:     kind,
		Behavior: et.Behavior,
		Elite:    elite,
		AnchorX:  x,
		Speed:    speed,
	})
	components.Transform.SetValue(enemy, components.TransformData{X: x, Y: y})
	components.Velocity.SetValue(enemy, components.VelocityData{VY: speed})
	components.Health.SetValue(enemy, components.HealthData{HP: hp, Max: hp})
	components.SpeedStat.SetValue(enemy, components.SpeedStatData{BaseLinear: speed, MaxLinear: speed})
	components.DropTable.SetValue(enemy, components.DropTableData{Entries: drops})
	components.ScoreValue.SetValue(enemy, components.ScoreValueData{Value: score})

	if et.Weapon != cfg.WeaponNone {
		if wd, ok := NewWeapon(et.Weapon, 1); ok {
			// Stagger the first volley so a wave does not fire in unison.
			wd.RemainingCooldownMs = wd.CooldownMs * (0.5 + w.Rand("enemy").Float64()*0.5)
			donburi.Add(enemy, components.Weapon, &wd)
		} else {
			w.Log.Warn("enemy weapon missing from table", zap.Stringer("kind", kind), zap.Stringer("weapon", et.Weapon))
		}
	}
	return enemy, true
}

// CreateEscort spawns a wingman orbiting a boss.
func CreateEscort(w *world.World, boss donburi.Entity, angle float64, mods cfg.DifficultyModifiers) (*donburi.Entry, bool) {
	bossEntry, ok := w.Alive(boss)
	if !ok {
		return nil, false
	}
	bt := components.Transform.Get(bossEntry)
	escort, ok := CreateEnemy(w, cfg.EnemyWingman, bt.X, bt.Y, false, mods)
	if !ok {
		return nil, false
	}
	donburi.Add(escort, components.Escort, &components.EscortData{
		Boss:    boss,
		HasBoss: true,
		Angle:   angle,
	})
	return escort, true
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
