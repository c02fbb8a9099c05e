package systems

import "github.com/automoto/skyraid/pipeline"

// Options wires the collaborators some systems need.
type Options struct {
	Store   ProgressStore
	Formula PerformanceFunc
}

// Pipeline returns every simulation system with its layer.
func Pipeline(opts Options) []pipeline.System {
	difficulty := NewDifficulty(opts.Formula)
	progression := NewProgression(opts.Store)

	return []pipeline.System{
		{Name: "clock", Layer: pipeline.LayerInput, Run: UpdateClock},
		{Name: "input", Layer: pipeline.LayerInput, Run: UpdateInput},
		{Name: "difficulty", Layer: pipeline.LayerDifficulty, Run: difficulty.Update},
		{Name: "spawn", Layer: pipeline.LayerSpawn, Run: UpdateSpawn},
		{Name: "boss_phase", Layer: pipeline.LayerBossPhase, Run: UpdateBossPhase},
		{Name: "boss_movement", Layer: pipeline.LayerBossAction, Run: UpdateBossMovement},
		{Name: "boss_combat", Layer: pipeline.LayerBossAction, Run: UpdateBossCombat},
		{Name: "enemy_ai", Layer: pipeline.LayerEnemyAI, Run: UpdateEnemyAI},
		{Name: "timers", Layer: pipeline.LayerTimers, Run: UpdateTimers},
		{Name: "synergy", Layer: pipeline.LayerSynergy, Run: UpdateSynergy},
		{Name: "weapon", Layer: pipeline.LayerWeapon, Run: UpdateWeapons},
		{Name: "movement", Layer: pipeline.LayerMovement, Run: UpdateMovement},
		{Name: "collision", Layer: pipeline.LayerCollision, Run: UpdateCollisions},
		{Name: "pickup", Layer: pipeline.LayerPickup, Run: UpdatePickups},
		{Name: "damage", Layer: pipeline.LayerDamage, Run: UpdateDamage},
		{Name: "loot", Layer: pipeline.LayerLoot, Run: UpdateLoot},
		{Name: "combo", Layer: pipeline.LayerCombo, Run: UpdateCombo},
		{Name: "progression", Layer: pipeline.LayerProgression, Run: progression.Update},
		{Name: "presentation", Layer: pipeline.LayerPresentation, Run: UpdatePresentation},
		{Name: "lifetime", Layer: pipeline.LayerCleanup, Run: UpdateLifetime},
		{Name: "cleanup", Layer: pipeline.LayerCleanup, Run: UpdateCleanup},
	}
}
