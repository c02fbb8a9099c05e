package systems

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"go.uber.org/zap"
)

// UpdateSpawn accrues spawn credits and spends them on weighted enemy picks. When the
// level timer reaches the standard duration the level boss arrives instead.
func UpdateSpawn(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	game := sc.Game
	if game.State == cfg.StateGameOver || game.BossActive {
		return nil
	}
	sp := sc.Spawner
	mods := sc.Difficulty.Mods

	if !sp.BossSpawn && game.LevelElapsedMs >= cfg.Difficulty.StandardLevelMs {
		spawnBoss(w, game, sp)
		return nil
	}

	rate := cfg.Spawn.CreditRate * CreditWave(game.ElapsedMs)
	sp.Credits += rate * w.DtSeconds() / orOne(mods.SpawnIntervalMult)
	if sp.Credits > cfg.Spawn.CreditCap {
		sp.Credits = cfg.Spawn.CreditCap
	}

	r := w.Rand("spawn")
	alive := liveEnemies.Count(w.World)
	for n := 0; n < cfg.Spawn.MaxPerTick; n++ {
		if sp.Credits < cfg.Spawn.SpendThreshold || alive >= cfg.Spawn.MaxEnemies {
			break
		}
		kind, ok := RollEnemy(r, game.Level)
		if !ok {
			break
		}
		cost, ok := enemyCost(w, kind)
		if !ok || cost > sp.Credits {
			break
		}
		sp.Credits -= cost

		elite := r.Float64() < EliteChance(game.Level, mods)
		x := cfg.Spawn.Margin + r.Float64()*(cfg.C.Width-2*cfg.Spawn.Margin)
		if _, ok := factory.CreateEnemy(w, kind, x, cfg.Spawn.SpawnY, elite, mods); ok {
			sp.Spawned++
			alive++
		}
	}
	return nil
}

// enemyCost looks up the credit price of a rolled kind. Kinds missing from the table are
// logged and never spawned.
func enemyCost(w *world.World, kind cfg.EnemyKind) (float64, bool) {
	et, ok := cfg.LookupEnemy(kind)
	if !ok {
		w.Log.Warn("rolled enemy kind has no table entry", zap.Stringer("kind", kind))
		return 0, false
	}
	return et.Cost, true
}

// CreditWave is the slow sine modulation of the credit rate.
func CreditWave(elapsedMs float64) float64 {
	if cfg.Spawn.WavePeriodMs <= 0 {
		return 1
	}
	return 1 + cfg.Spawn.WaveAmplitude*math.Sin(2*math.Pi*elapsedMs/cfg.Spawn.WavePeriodMs)
}

// EliteChance is the probability that a spawned enemy is upgraded.
func EliteChance(level int, mods cfg.DifficultyModifiers) float64 {
	c := cfg.Spawn.EliteBaseChance + float64(level)*cfg.Spawn.EliteLevelStep + mods.EliteChanceMod
	return clamp(c, 0, cfg.Spawn.EliteMaxChance)
}

// RollEnemy picks an enemy kind allowed on the level, weighted by the spawn table.
func RollEnemy(r *rand.Rand, level int) (cfg.EnemyKind, bool) {
	kinds := make([]cfg.EnemyKind, 0, len(cfg.Enemy.Types))
	for k, et := range cfg.Enemy.Types {
		if et.Weight > 0 && et.MinLevel <= level {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	weights := make([]float64, len(kinds))
	for i, k := range kinds {
		weights[i] = float64(cfg.Enemy.Types[k].Weight)
	}
	i := WeightedPick(r, weights)
	if i < 0 {
		return 0, false
	}
	return kinds[i], true
}

func spawnBoss(w *world.World, game *components.GameData, sp *components.SpawnerData) {
	kind := cfg.BossForLevel(game.Level)
	boss, ok := factory.CreateBoss(w, kind, cfg.C.Width/2)
	if !ok {
		// Logged once by the factory; the level continues without a boss.
		sp.BossSpawn = true
		return
	}
	sp.BossSpawn = true
	game.BossActive = true
	game.State = cfg.StateBossFight
	events.Emit(w.Events, events.BossSpawned{Boss: boss.Entity(), Kind: kind})
	playSound(w, cfg.SoundBossWarning)
	w.Log.Info("boss spawned", zap.Stringer("boss", kind), zap.Int("level", game.Level))
}
