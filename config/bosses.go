package config

import (
	"fmt"
	"image/color"
)

// BossPhaseConfig is one stage of a boss fight. A phase is entered once the boss health
// fraction drops to or below Threshold.
type BossPhaseConfig struct {
	Threshold float64
	Movement  MovementPattern
	Weapon    WeaponKind

	// Modifiers; zero means 1.0.
	MoveSpeed float64
	FireRate  float64
	Damage    float64

	InvulnerableMs float64
	Tint           color.RGBA
	Event          PhaseEvent
	SummonEveryMs  float64 // 0 = no periodic summons in this phase
}

// BossTypeConfig contains configuration for specific boss types
type BossTypeConfig struct {
	Kind      BossKind
	Health    float64
	Speed     float64 // base MaxLinear, px/s
	Score     int
	Width     float64
	Height    float64
	Contact   float64
	Phases    []BossPhaseConfig
	Drops     []DropEntry
	Amplitude float64 // horizontal reach of movement patterns
	Color     color.RGBA
}

// BossConfig contains boss system configuration
type BossConfig struct {
	Types map[BossKind]BossTypeConfig

	EntranceSpeed   float64 // px/s
	EntranceY       float64 // target on-screen Y
	EntranceEpsilon float64
	SpawnY          float64
	WingmenPerWave  int
	TeleportEveryMs float64
	AdaptiveRange   float64 // closer than this, the adaptive pattern dodges
	EnrageSpeedMult float64
}

var Boss BossConfig

// LookupBoss returns the configuration for a boss kind.
func LookupBoss(kind BossKind) (BossTypeConfig, bool) {
	b, ok := Boss.Types[kind]
	return b, ok
}

// BossForLevel picks the boss that guards a level.
func BossForLevel(level int) BossKind {
	if level < 1 {
		level = 1
	}
	return BossKind((level - 1) % int(bossKindCount))
}

// Validate checks the phase list invariants: first threshold 1.0, strictly decreasing.
func (b BossTypeConfig) Validate() error {
	if len(b.Phases) == 0 {
		return fmt.Errorf("boss %s: no phases", b.Kind)
	}
	if b.Phases[0].Threshold != 1.0 {
		return fmt.Errorf("boss %s: first phase threshold %.2f, want 1.0", b.Kind, b.Phases[0].Threshold)
	}
	for i := 1; i < len(b.Phases); i++ {
		if b.Phases[i].Threshold >= b.Phases[i-1].Threshold {
			return fmt.Errorf("boss %s: phase %d threshold %.2f not below %.2f",
				b.Kind, i, b.Phases[i].Threshold, b.Phases[i-1].Threshold)
		}
	}
	return nil
}

func init() {
	bossDrops := []DropEntry{
		{Item: ItemBomb, Weight: 300},
		{Item: ItemShield, Weight: 300},
		{Item: ItemHealth, Weight: 400},
	}

	Boss = BossConfig{
		EntranceSpeed:   90,
		EntranceY:       140,
		EntranceEpsilon: 1.5,
		SpawnY:          -80,
		WingmenPerWave:  2,
		TeleportEveryMs: 2200,
		AdaptiveRange:   220,
		EnrageSpeedMult: 1.15,
		Types: map[BossKind]BossTypeConfig{
			BossGuardian: {
				Kind: BossGuardian, Health: 2000, Speed: 120, Score: 5000,
				Width: 120, Height: 80, Contact: 40, Amplitude: 150,
				Color: Blue, Drops: bossDrops,
				Phases: []BossPhaseConfig{
					{Threshold: 1.0, Movement: MoveSine, Weapon: WeaponBossSpread},
					{Threshold: 0.6, Movement: MoveFigure8, Weapon: WeaponBossRing,
						MoveSpeed: 1.5, FireRate: 1.2, InvulnerableMs: 800, Tint: LightRed,
						Event: PhaseEventScreenClear},
					{Threshold: 0.3, Movement: MoveAggressive, Weapon: WeaponBossBarrage,
						MoveSpeed: 1.8, FireRate: 1.5, Damage: 1.25, InvulnerableMs: 800, Tint: Red,
						Event: PhaseEventEnrage},
				},
			},
			BossDestroyer: {
				Kind: BossDestroyer, Health: 2600, Speed: 100, Score: 7000,
				Width: 140, Height: 90, Contact: 45, Amplitude: 170,
				Color: DarkBlue, Drops: bossDrops,
				Phases: []BossPhaseConfig{
					{Threshold: 1.0, Movement: MoveZigzag, Weapon: WeaponBossSpread},
					{Threshold: 0.7, Movement: MoveTracking, Weapon: WeaponBossHoming,
						MoveSpeed: 1.3, InvulnerableMs: 600, Tint: Orange,
						Event: PhaseEventSummonWingmen, SummonEveryMs: 9000},
					{Threshold: 0.4, Movement: MoveCircular, Weapon: WeaponBossSpiral,
						MoveSpeed: 1.2, FireRate: 1.3, InvulnerableMs: 600, Tint: Red,
						Event: PhaseEventScreenClear},
					{Threshold: 0.15, Movement: MoveAggressive, Weapon: WeaponBossBarrage,
						MoveSpeed: 2.0, FireRate: 1.6, Damage: 1.3, Tint: Red,
						Event: PhaseEventEnrage},
				},
			},
			BossTitan: {
				Kind: BossTitan, Health: 3400, Speed: 70, Score: 9000,
				Width: 170, Height: 110, Contact: 60, Amplitude: 120,
				Color: Purple, Drops: bossDrops,
				Phases: []BossPhaseConfig{
					{Threshold: 1.0, Movement: MoveSlowDescent, Weapon: WeaponBossRing,
						Event: PhaseEventSummonWingmen, SummonEveryMs: 12000},
					{Threshold: 0.5, Movement: MoveAdaptive, Weapon: WeaponBossBarrage,
						MoveSpeed: 1.6, FireRate: 1.25, InvulnerableMs: 1000, Tint: Orange,
						Event: PhaseEventSummonWingmen, SummonEveryMs: 8000},
					{Threshold: 0.2, Movement: MoveCircular, Weapon: WeaponBossSpiral,
						MoveSpeed: 1.4, FireRate: 1.5, Damage: 1.2, InvulnerableMs: 1000, Tint: Red,
						Event: PhaseEventScreenClear},
				},
			},
			BossPhantom: {
				Kind: BossPhantom, Health: 3000, Speed: 150, Score: 11000,
				Width: 110, Height: 90, Contact: 40, Amplitude: 180,
				Color: Magenta, Drops: bossDrops,
				Phases: []BossPhaseConfig{
					{Threshold: 1.0, Movement: MoveTeleport, Weapon: WeaponBossSpiral},
					{Threshold: 0.65, Movement: MoveAdaptive, Weapon: WeaponBossHoming,
						MoveSpeed: 1.25, FireRate: 1.2, InvulnerableMs: 700, Tint: LightBlue,
						Event: PhaseEventScreenClear},
					{Threshold: 0.35, Movement: MoveTeleport, Weapon: WeaponBossRing,
						MoveSpeed: 1.0, FireRate: 1.6, Damage: 1.2, InvulnerableMs: 700, Tint: Red,
						Event: PhaseEventSummonWingmen, SummonEveryMs: 7000},
				},
			},
		},
	}
}
