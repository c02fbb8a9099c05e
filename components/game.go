package components

import (
	cfg "github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

// GameData stores run-wide scalars. This is a singleton component.
type GameData struct {
	State           cfg.GameStateID
	Score           int
	Level           int
	MaxLevelReached int
	ElapsedMs       float64
	LevelElapsedMs  float64
	BossActive      bool
	Kills           int
}

var Game = donburi.NewComponentType[GameData]()

// ComboData is the kill streak. Level is always LevelFor(Count).
type ComboData struct {
	Count   int
	Level   int
	TimerMs float64
	Best    int
}

var Combo = donburi.NewComponentType[ComboData]()

// LevelFor maps a streak to its combo level using the configured thresholds.
func LevelFor(count int) int {
	level := 0
	for i, t := range cfg.Combo.Thresholds {
		if count >= t {
			level = i + 1
		}
	}
	return level
}

// DifficultyData is the adaptive difficulty state machine.
type DifficultyData struct {
	Enabled     bool
	Mode        cfg.DifficultyMode
	EvalTimerMs float64
	LastScore   float64
	Mods        cfg.DifficultyModifiers
}

var Difficulty = donburi.NewComponentType[DifficultyData]()

// SpawnerData is the enemy spawn budget.
type SpawnerData struct {
	Credits   float64
	Spawned   int
	BossSpawn bool // boss already spawned on this level
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// LootData tracks the pity timer.
type LootData struct {
	SinceDropMs float64
}

var Loot = donburi.NewComponentType[LootData]()
