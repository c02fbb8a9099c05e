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

// CreateBoss spawns a boss above the playfield in its entrance state.
func CreateBoss(w *world.World, kind cfg.BossKind, x float64) (*donburi.Entry, bool) {
	bt, ok := cfg.LookupBoss(kind)
	if !ok || len(bt.Phases) == 0 {
		w.Log.Warn("boss kind missing from table, spawn skipped", zap.Stringer("kind", kind))
		return nil, false
	}
	first := bt.Phases[0]
	weapon, ok := NewWeapon(first.Weapon, 1)
	if !ok {
		w.Log.Warn("boss weapon missing from table, spawn skipped",
			zap.Stringer("kind", kind), zap.Stringer("weapon", first.Weapon))
		return nil, false
	}
	weapon.FireRateMultiplier = orOne(first.FireRate)
	weapon.DamageMultiplier = orOne(first.Damage)

	boss := archetypes.Boss.Spawn(w.World)

	y := cfg.Boss.SpawnY
	obj := newObject(w, x, y, bt.Width, bt.Height, tags.ResolvEnemy)
	obj.Data = boss.Entity()
	components.Object.SetValue(boss, components.ObjectData{Object: obj})

	components.BossTag.SetValue(boss, components.BossTagData{Kind: kind})
	components.BossAI.SetValue(boss, components.BossAIData{AnchorX: x, AnchorY: cfg.Boss.EntranceY})
	components.BossEntrance.SetValue(boss, components.BossEntranceData{
		TargetY: cfg.Boss.EntranceY,
		Speed:   cfg.Boss.EntranceSpeed,
	})
	components.SpeedOverride.SetValue(boss, components.SpeedOverrideData{MaxLinear: cfg.Boss.EntranceSpeed})
	components.Transform.SetValue(boss, components.TransformData{X: x, Y: y})
	components.Health.SetValue(boss, components.HealthData{HP: bt.Health, Max: bt.Health})
	components.Weapon.SetValue(boss, weapon)
	components.SpeedStat.SetValue(boss, components.SpeedStatData{
		BaseLinear: bt.Speed,
		MaxLinear:  bt.Speed * orOne(first.MoveSpeed),
	})
	components.DropTable.SetValue(boss, components.DropTableData{Entries: bt.Drops})
	components.ScoreValue.SetValue(boss, components.ScoreValueData{Value: bt.Score})

	return boss, true
}
