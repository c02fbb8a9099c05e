package systems

import (
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/stretchr/testify/require"
)

func TestActiveSynergy(t *testing.T) {
	s, ok := ActiveSynergy(cfg.WeaponLaser, cfg.WeaponVulcan)
	require.True(t, ok)
	require.Equal(t, cfg.SynergyPrism, s.Kind)

	_, ok = ActiveSynergy(cfg.WeaponVulcan, cfg.WeaponNone)
	require.False(t, ok)
	_, ok = ActiveSynergy(cfg.WeaponLaser, cfg.WeaponLaser)
	require.False(t, ok)
	_, ok = ActiveSynergy(cfg.WeaponVulcan, cfg.WeaponPlasma)
	require.False(t, ok)
}

func TestTryTrigger(t *testing.T) {
	effects := TryTrigger(cfg.SynergyPrism, TriggerContext{Weapon: cfg.WeaponLaser, Trigger: cfg.TriggerHit})
	require.Len(t, effects, 1)
	require.Equal(t, cfg.EffectDamageMultiplier, effects[0].Kind)
	require.Equal(t, 1.5, effects[0].Value)

	require.Empty(t, TryTrigger(cfg.SynergyPrism, TriggerContext{Weapon: cfg.WeaponVulcan, Trigger: cfg.TriggerHit}))
	require.Empty(t, TryTrigger(cfg.SynergyPrism, TriggerContext{Weapon: cfg.WeaponLaser, Trigger: cfg.TriggerBounce}))
	require.Empty(t, TryTrigger(cfg.SynergyNone, TriggerContext{Weapon: cfg.WeaponLaser, Trigger: cfg.TriggerHit}))

	require.Empty(t, TryTrigger(cfg.SynergyTesla, TriggerContext{Weapon: cfg.WeaponPlasma, Trigger: cfg.TriggerHit, Roll: 0.5}))
	chain := TryTrigger(cfg.SynergyTesla, TriggerContext{Weapon: cfg.WeaponPlasma, Trigger: cfg.TriggerHit, Roll: 0.1})
	require.Len(t, chain, 1)
	require.Equal(t, cfg.EffectChainLightning, chain[0].Kind)
	require.Equal(t, 3, chain[0].Targets)

	require.Empty(t, TryTrigger(cfg.SynergyTesla, TriggerContext{Weapon: cfg.WeaponVulcan, Trigger: cfg.TriggerHit, Roll: 0}))
}

func TestEquipFormsSynergy(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	w.BeginFrame(frameMs)

	require.True(t, Equip(w, p, cfg.WeaponLaser))

	require.Equal(t, cfg.WeaponLaser, components.Weapon.Get(p).Kind)
	require.True(t, p.HasComponent(components.SecondaryWeapon))
	require.Equal(t, cfg.WeaponVulcan, components.SecondaryWeapon.Get(p).Kind)
	lo := components.Loadout.Get(p)
	require.Equal(t, cfg.SynergyPrism, lo.Synergy)

	equipped := collectEvents[events.WeaponEquipped](w)
	require.Len(t, equipped, 1)
	require.Equal(t, cfg.SynergyPrism, equipped[0].Synergy)
}

func TestEquipOrdersMainWeaponFirst(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	require.True(t, Equip(w, p, cfg.WeaponWave))
	require.Equal(t, cfg.SynergyOverdrive, components.Loadout.Get(p).Synergy)
	require.Equal(t, cfg.WeaponWave, components.Weapon.Get(p).Kind)

	// Missile + Wave is Gravity Well with the missile as main weapon.
	w2 := newTestWorld(t)
	p2 := newTestPlayer(t, w2)
	require.True(t, Equip(w2, p2, cfg.WeaponMissile))
	require.True(t, Equip(w2, p2, cfg.WeaponWave))
	require.Equal(t, cfg.WeaponMissile, components.Weapon.Get(p2).Kind)
	require.Equal(t, cfg.WeaponWave, components.SecondaryWeapon.Get(p2).Kind)
	require.Equal(t, cfg.SynergyGravityWell, components.Loadout.Get(p2).Synergy)
}

func TestEquipSameKindLevelsUp(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)

	for i := 0; i < cfg.Weapon.MaxLevel+2; i++ {
		require.True(t, Equip(w, p, cfg.WeaponVulcan))
	}
	require.Equal(t, cfg.Weapon.MaxLevel, components.Weapon.Get(p).Level)
}

func TestEquipWithoutSynergyReplacesLoadout(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	require.True(t, Equip(w, p, cfg.WeaponLaser))
	require.True(t, p.HasComponent(components.SecondaryWeapon))

	require.True(t, Equip(w, p, cfg.WeaponMissile))

	require.Equal(t, cfg.WeaponMissile, components.Weapon.Get(p).Kind)
	require.Equal(t, 1, components.Weapon.Get(p).Level)
	require.False(t, p.HasComponent(components.SecondaryWeapon))
	require.Equal(t, cfg.SynergyNone, components.Loadout.Get(p).Synergy)
}

func TestEquipRejectsEnemyWeapons(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	require.False(t, Equip(w, p, cfg.WeaponBossRing))
	require.Equal(t, cfg.WeaponVulcan, components.Weapon.Get(p).Kind)
}
