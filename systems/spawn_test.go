package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var livePickups = live(tags.Pickup)

func TestWeightedPickEvenSplit(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	counts := [2]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[WeightedPick(r, []float64{1, 1})]++
	}
	for _, c := range counts {
		require.InDelta(t, 0.5, float64(c)/draws, 0.02)
	}
}

func TestWeightedPickSkipsZeroWeights(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		require.Equal(t, 1, WeightedPick(r, []float64{0, 5, 0}))
	}
	require.Equal(t, -1, WeightedPick(r, []float64{0, 0}))
	require.Equal(t, -1, WeightedPick(r, nil))
}

func TestRollEnemyRespectsMinLevel(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 2000; i++ {
		kind, ok := RollEnemy(r, 1)
		require.True(t, ok)
		et, _ := cfg.LookupEnemy(kind)
		require.LessOrEqual(t, et.MinLevel, 1)
		require.Positive(t, et.Weight)
	}
}

func TestEliteChanceIsCapped(t *testing.T) {
	mods := cfg.ModifiersFor(cfg.DifficultyNormal)
	require.InDelta(t, cfg.Spawn.EliteMaxChance, EliteChance(1000, mods), 1e-9)
	require.GreaterOrEqual(t, EliteChance(1, cfg.DifficultyModifiers{EliteChanceMod: -1}), 0.0)
}

func TestSpawnSpendsCredits(t *testing.T) {
	w := newTestWorld(t)
	sc := scalars(t, w)
	sc.Spawner.Credits = cfg.Spawn.CreditCap

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateSpawn(w))

	require.Positive(t, sc.Spawner.Spawned)
	require.LessOrEqual(t, sc.Spawner.Spawned, cfg.Spawn.MaxPerTick)
	require.Less(t, sc.Spawner.Credits, cfg.Spawn.CreditCap)
	require.Equal(t, sc.Spawner.Spawned, liveEnemies.Count(w.World))
}

func TestUnknownEnemyKindIsNotPriced(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	w := world.New(42, zap.New(core))
	factory.CreateGlobals(w, 1, 1, true)

	cost, ok := enemyCost(w, cfg.EnemyKind(250))
	require.False(t, ok)
	require.Zero(t, cost)
	require.Equal(t, 1, logs.FilterMessage("rolled enemy kind has no table entry").Len())

	cost, ok = enemyCost(w, cfg.EnemyScout)
	require.True(t, ok)
	require.Positive(t, cost)
	require.Equal(t, 1, logs.Len())
}

func TestSpawnIsDeterministicPerSeed(t *testing.T) {
	run := func() []cfg.EnemyKind {
		w := newTestWorld(t)
		scalars(t, w).Spawner.Credits = cfg.Spawn.CreditCap
		w.BeginFrame(frameMs)
		require.NoError(t, UpdateSpawn(w))
		var kinds []cfg.EnemyKind
		components.Enemy.Each(w.World, func(e *donburi.Entry) {
			kinds = append(kinds, components.Enemy.Get(e).Kind)
		})
		return kinds
	}
	require.Equal(t, run(), run())
}

func TestBossArrivesAtStandardLevelTime(t *testing.T) {
	w := newTestWorld(t)
	sc := scalars(t, w)
	sc.Game.LevelElapsedMs = cfg.Difficulty.StandardLevelMs

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateSpawn(w))

	require.True(t, sc.Game.BossActive)
	require.True(t, sc.Spawner.BossSpawn)
	require.Equal(t, cfg.StateBossFight, sc.Game.State)
	spawned := collectEvents[events.BossSpawned](w)
	require.Len(t, spawned, 1)
	require.Equal(t, cfg.BossForLevel(1), spawned[0].Kind)

	sc.Spawner.Credits = cfg.Spawn.CreditCap
	w.BeginFrame(frameMs)
	require.NoError(t, UpdateSpawn(w))
	require.Zero(t, sc.Spawner.Spawned)
}

func TestRollDropPity(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	drops := []cfg.DropEntry{
		{Item: cfg.ItemNothing, Weight: 1_000_000},
		{Item: cfg.ItemGem, Weight: 1},
	}
	for i := 0; i < 100; i++ {
		require.Equal(t, cfg.ItemGem, RollDrop(r, drops, 1, true))
	}
}

func TestRollDropScalesPowerups(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	drops := []cfg.DropEntry{
		{Item: cfg.ItemGem, Weight: 1},
		{Item: cfg.ItemShield, Weight: 1},
		{Item: cfg.ItemLaser, Weight: 1},
	}
	for i := 0; i < 200; i++ {
		require.Equal(t, cfg.ItemGem, RollDrop(r, drops, 0, false))
	}
}

func TestLootPityForcesDrop(t *testing.T) {
	w := newTestWorld(t)
	sc := scalars(t, w)
	drops := []cfg.DropEntry{{Item: cfg.ItemNothing, Weight: 1}, {Item: cfg.ItemGem, Weight: 1}}

	sc.Loot.SinceDropMs = 0
	w.BeginFrame(frameMs)
	events.Emit(w.Events, events.Kill{Drops: []cfg.DropEntry{{Item: cfg.ItemNothing, Weight: 1}}, X: 50, Y: 50})
	require.NoError(t, UpdateLoot(w))
	require.Zero(t, livePickups.Count(w.World))

	sc.Loot.SinceDropMs = cfg.Loot.PityMs
	w.BeginFrame(frameMs)
	events.Emit(w.Events, events.Kill{Drops: drops, X: 50, Y: 50})
	require.NoError(t, UpdateLoot(w))

	require.Equal(t, 1, livePickups.Count(w.World))
	require.Zero(t, sc.Loot.SinceDropMs)
}
