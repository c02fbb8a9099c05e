package archetypes

import (
	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/tags"
	"github.com/yohamta/donburi"
)

var (
	Globals = newArchetype(
		tags.Globals,
		components.Game,
		components.Combo,
		components.Difficulty,
		components.Spawner,
		components.Loot,
		components.Input,
		components.Camera,
		components.Audio,
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Health,
		components.Shield,
		components.Weapon,
		components.Loadout,
		components.SpeedStat,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Velocity,
		components.Health,
		components.SpeedStat,
		components.DropTable,
		components.ScoreValue,
		components.Object,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.BossTag,
		components.BossAI,
		components.BossEntrance,
		components.SpeedOverride,
		components.Transform,
		components.Velocity,
		components.Health,
		components.Weapon,
		components.SpeedStat,
		components.DropTable,
		components.ScoreValue,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
		components.Velocity,
		components.Lifetime,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Transform,
		components.Velocity,
		components.Lifetime,
		components.Object,
	)
	SlowField = newArchetype(
		tags.SlowField,
		components.SlowField,
		components.Transform,
		components.Lifetime,
	)
	Beam = newArchetype(
		tags.Beam,
		components.Beam,
		components.Transform,
		components.Lifetime,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extra ones.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
