package config

// DifficultyMode is the adaptive difficulty bucket.
type DifficultyMode int

const (
	DifficultyNormal DifficultyMode = iota
	DifficultyEasy
	DifficultyHard
)

func (m DifficultyMode) String() string {
	switch m {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// DifficultyModifiers is the record consumed by the spawn, enemy and loot systems.
type DifficultyModifiers struct {
	SpawnIntervalMult float64
	EliteChanceMod    float64
	EnemyHealthMult   float64
	EnemySpeedMult    float64
	PowerupDropMult   float64
	ScoreMult         float64
}

// DifficultyConfig contains adaptive difficulty tuning
type DifficultyConfig struct {
	Enabled        bool
	EvalIntervalMs float64
	HighThreshold  float64
	LowThreshold   float64

	HealthWeight float64
	WeaponWeight float64
	ComboWeight  float64
	TimeWeight   float64

	// StandardLevelMs is the expected duration of a level; it also schedules the boss.
	StandardLevelMs float64

	Modes map[DifficultyMode]DifficultyModifiers
}

var Difficulty DifficultyConfig

// ModifiersFor returns the modifiers of a mode, falling back to NORMAL.
func ModifiersFor(mode DifficultyMode) DifficultyModifiers {
	if m, ok := Difficulty.Modes[mode]; ok {
		return m
	}
	return Difficulty.Modes[DifficultyNormal]
}

func init() {
	Difficulty = DifficultyConfig{
		Enabled:        true,
		EvalIntervalMs: 5000,
		HighThreshold:  0.7,
		LowThreshold:   0.3,

		HealthWeight: 0.35,
		WeaponWeight: 0.25,
		ComboWeight:  0.2,
		TimeWeight:   0.2,

		StandardLevelMs: 90000,

		Modes: map[DifficultyMode]DifficultyModifiers{
			DifficultyNormal: {
				SpawnIntervalMult: 1.0,
				EliteChanceMod:    0,
				EnemyHealthMult:   1.0,
				EnemySpeedMult:    1.0,
				PowerupDropMult:   1.0,
				ScoreMult:         1.0,
			},
			DifficultyEasy: {
				SpawnIntervalMult: 1.2,
				EliteChanceMod:    -0.05,
				EnemyHealthMult:   0.9,
				EnemySpeedMult:    0.9,
				PowerupDropMult:   0.8,
				ScoreMult:         1.2,
			},
			DifficultyHard: {
				SpawnIntervalMult: 0.8,
				EliteChanceMod:    -0.05,
				EnemyHealthMult:   1.0,
				EnemySpeedMult:    1.0,
				PowerupDropMult:   1.5,
				ScoreMult:         1.0,
			},
		},
	}
}
