package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPlayerBulletHitsEnemy(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	e := newTestEnemy(t, w, 200, 200, 50)
	b, ok := factory.CreateBullet(w, factory.BulletSpec{
		Owner: p.Entity(), Faction: cfg.FactionPlayer, Weapon: cfg.WeaponPlasma,
		X: 200, Y: 200, Angle: math.Pi, Damage: 30,
	})
	require.True(t, ok)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))

	hits := collectEvents[events.Hit](w)
	require.Len(t, hits, 1)
	require.Equal(t, e.Entity(), hits[0].Victim)
	require.Equal(t, p.Entity(), hits[0].Source)
	require.True(t, hits[0].FromPlayer)
	require.Equal(t, cfg.WeaponPlasma, hits[0].Weapon)
	require.Equal(t, components.ReasonHit, components.Destroy.Get(b).Reason)
}

func TestPiercingBulletHitsEachEnemyOnce(t *testing.T) {
	w := newTestWorld(t)
	newTestEnemy(t, w, 200, 200, 50)
	b, ok := factory.CreateBullet(w, factory.BulletSpec{
		Faction: cfg.FactionPlayer, Weapon: cfg.WeaponLaser,
		X: 200, Y: 200, Angle: math.Pi, Damage: 14,
	})
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		w.BeginFrame(frameMs)
		require.NoError(t, UpdateCollisions(w))
		if i == 0 {
			require.Equal(t, 1, events.Count[events.Hit](w.Events))
		} else {
			require.Zero(t, events.Count[events.Hit](w.Events))
		}
	}
	require.False(t, b.HasComponent(components.Destroy))
	require.Equal(t, 1, components.Bullet.Get(b).Pierce)
}

func TestExplosiveBulletHitsArea(t *testing.T) {
	w := newTestWorld(t)
	first := newTestEnemy(t, w, 200, 200, 100)
	near := newTestEnemy(t, w, 230, 200, 100)
	far := newTestEnemy(t, w, 400, 400, 100)
	_, ok := factory.CreateBullet(w, factory.BulletSpec{
		Faction: cfg.FactionPlayer, Weapon: cfg.WeaponMissile,
		X: 200, Y: 200, Angle: math.Pi, Damage: 22,
	})
	require.True(t, ok)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))

	require.Equal(t, 1, events.Count[events.Explosion](w.Events))
	victims := map[donburi.Entity]bool{}
	for _, h := range collectEvents[events.Hit](w) {
		require.Equal(t, events.HitExplosion, h.Kind)
		victims[h.Victim] = true
	}
	require.True(t, victims[first.Entity()])
	require.True(t, victims[near.Entity()])
	require.False(t, victims[far.Entity()])
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	pt := components.Transform.Get(p)
	b, ok := factory.CreateBullet(w, factory.BulletSpec{
		Faction: cfg.FactionEnemy, Weapon: cfg.WeaponEnemyPellet,
		X: pt.X, Y: pt.Y, Damage: 10,
	})
	require.True(t, ok)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))

	hits := collectEvents[events.Hit](w)
	require.Len(t, hits, 1)
	require.Equal(t, p.Entity(), hits[0].Victim)
	require.False(t, hits[0].FromPlayer)
	require.True(t, b.HasComponent(components.Destroy))
}

func TestContactDamageHasCooldown(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	pt := components.Transform.Get(p)
	newTestEnemy(t, w, pt.X, pt.Y, 50)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))
	require.Equal(t, 1, events.Count[events.Hit](w.Events))
	require.Equal(t, cfg.Damage.ContactCooldownMs, components.Player.Get(p).ContactCooldownMs)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))
	require.Zero(t, events.Count[events.Hit](w.Events))
}

func TestPickupCollected(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	pt := components.Transform.Get(p)
	pk := factory.CreatePickup(w, cfg.ItemGem, pt.X, pt.Y)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))
	require.NoError(t, UpdatePickups(w))

	require.Equal(t, components.ReasonCollected, components.Destroy.Get(pk).Reason)
	require.Equal(t, cfg.Player.GemScore, scalars(t, w).Game.Score)
}

func TestWeaponPickupEquips(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	pt := components.Transform.Get(p)
	factory.CreatePickup(w, cfg.ItemLaser, pt.X, pt.Y)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))
	require.NoError(t, UpdatePickups(w))

	require.Equal(t, cfg.WeaponLaser, components.Weapon.Get(p).Kind)
	require.Equal(t, cfg.SynergyPrism, components.Loadout.Get(p).Synergy)
}

func TestMissileDamagesLargeTargetHitAtItsEdge(t *testing.T) {
	w := newTestWorld(t)
	boss, ok := factory.CreateBoss(w, cfg.BossTitan, 240)
	require.True(t, ok)
	bt := components.Transform.Get(boss)
	bt.Y = 200
	syncObject(boss, bt)

	missile, ok := factory.CreateBullet(w, factory.BulletSpec{
		Faction: cfg.FactionPlayer, Weapon: cfg.WeaponMissile,
		X: 240, Y: 260, Angle: math.Pi, Damage: 22,
	})
	require.True(t, ok)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateCollisions(w))

	require.Equal(t, 1, events.Count[events.Explosion](w.Events))
	hits := collectEvents[events.Hit](w)
	require.Len(t, hits, 1)
	require.Equal(t, boss.Entity(), hits[0].Victim)
	require.Equal(t, events.HitExplosion, hits[0].Kind)
	require.True(t, missile.HasComponent(components.Destroy))
}
