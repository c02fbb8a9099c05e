package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func restoreEnemyTypes(t *testing.T) {
	t.Helper()
	saved := make(map[EnemyKind]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		saved[k] = v
	}
	t.Cleanup(func() { Enemy.Types = saved })
}

func TestApplyTablesOverlaysEntries(t *testing.T) {
	restoreEnemyTypes(t)
	before := Enemy.Types[EnemyTank]

	err := ApplyTables([]byte(`
enemies:
  - kind: scout
    weight: 3
    cost: 1.5
    drops:
      - item: gem
        weight: 1
      - item: health
        weight: 4
  - kind: tank
    weight: 0
`))
	require.NoError(t, err)

	scout := Enemy.Types[EnemyScout]
	require.Equal(t, 3, scout.Weight)
	require.Equal(t, 1.5, scout.Cost)
	require.Equal(t, []DropEntry{{Item: ItemGem, Weight: 1}, {Item: ItemHealth, Weight: 4}}, scout.Drops)

	tank := Enemy.Types[EnemyTank]
	require.Zero(t, tank.Weight)
	require.Equal(t, before.Cost, tank.Cost)
	require.Equal(t, before.Drops, tank.Drops)
}

func TestApplyTablesIsAllOrNothing(t *testing.T) {
	restoreEnemyTypes(t)
	before := Enemy.Types[EnemyScout]

	err := ApplyTables([]byte(`
enemies:
  - kind: scout
    weight: 50
  - kind: dragon
    weight: 1
`))
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Equal(t, before.Weight, Enemy.Types[EnemyScout].Weight)

	err = ApplyTables([]byte(`
enemies:
  - kind: scout
    drops:
      - item: treasure
        weight: 1
`))
	require.ErrorIs(t, err, ErrUnknownKind)

	err = ApplyTables([]byte(`
enemies:
  - kind: scout
    weight: -1
`))
	require.ErrorContains(t, err, "negative weight")
	require.Equal(t, before, Enemy.Types[EnemyScout])
}

func TestParseKinds(t *testing.T) {
	k, err := ParseEnemyKind("kamikaze")
	require.NoError(t, err)
	require.Equal(t, EnemyKamikaze, k)

	item, err := ParseItemKind("bomb")
	require.NoError(t, err)
	require.Equal(t, ItemBomb, item)

	_, err = ParseEnemyKind("")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestBossTablesDescendPhases(t *testing.T) {
	for kind, b := range Boss.Types {
		require.NoError(t, b.Validate(), kind.String())
	}
}

func TestSynergyLookupIsSymmetric(t *testing.T) {
	a, ok := SynergyFor(WeaponLaser, WeaponVulcan)
	require.True(t, ok)
	b, ok := SynergyFor(WeaponVulcan, WeaponLaser)
	require.True(t, ok)
	require.Equal(t, SynergyPrism, a.Kind)
	require.Equal(t, a.Kind, b.Kind)

	_, ok = SynergyFor(WeaponVulcan, WeaponPlasma)
	require.False(t, ok)
}
