package config

import "image/color"

// DropEntry is one weighted outcome of a drop table.
type DropEntry struct {
	Item   ItemKind
	Weight int
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Kind      EnemyKind
	Health    float64
	Speed     float64 // px/s
	Behavior  Behavior
	Weapon    WeaponKind // WeaponNone = never fires
	Score     int
	Cost      float64 // spawn credits
	Weight    int     // spawn weight
	MinLevel  int     // first level the kind may spawn on
	Width     float64
	Height    float64
	Contact   float64 // damage dealt to the player on body contact
	Amplitude float64 // sine / strafe sway in px
	Frequency float64 // sine / strafe sway in Hz
	Drops     []DropEntry
	Color     color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	EliteHealthMult float64
	EliteScoreMult  float64
	EliteSpeedMult  float64
	EliteTint       color.RGBA
	EliteDrops      []DropEntry

	EscortOrbitRadius float64
	EscortOrbitSpeed  float64 // rad/s
	DefaultScore      int
}

var Enemy EnemyConfig

// LookupEnemy returns the configuration for an enemy kind.
func LookupEnemy(kind EnemyKind) (EnemyTypeConfig, bool) {
	e, ok := Enemy.Types[kind]
	return e, ok
}

func init() {
	commonDrops := []DropEntry{
		{Item: ItemNothing, Weight: 820},
		{Item: ItemGem, Weight: 100},
		{Item: ItemHealth, Weight: 30},
		{Item: ItemShield, Weight: 20},
		{Item: ItemVulcan, Weight: 6},
		{Item: ItemLaser, Weight: 6},
		{Item: ItemMissile, Weight: 6},
		{Item: ItemWave, Weight: 6},
		{Item: ItemPlasma, Weight: 6},
	}
	heavyDrops := []DropEntry{
		{Item: ItemNothing, Weight: 500},
		{Item: ItemGem, Weight: 200},
		{Item: ItemHealth, Weight: 80},
		{Item: ItemShield, Weight: 60},
		{Item: ItemBomb, Weight: 40},
		{Item: ItemVulcan, Weight: 24},
		{Item: ItemLaser, Weight: 24},
		{Item: ItemMissile, Weight: 24},
		{Item: ItemWave, Weight: 24},
		{Item: ItemPlasma, Weight: 24},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyScout: {
				Kind: EnemyScout, Health: 12, Speed: 140, Behavior: BehaviorStraight,
				Score: 100, Cost: 1, Weight: 500, MinLevel: 1,
				Width: 22, Height: 22, Contact: 15,
				Drops: commonDrops, Color: LightGreen,
			},
			EnemyFighter: {
				Kind: EnemyFighter, Health: 24, Speed: 110, Behavior: BehaviorSine,
				Weapon: WeaponEnemyPellet,
				Score: 150, Cost: 2, Weight: 300, MinLevel: 1,
				Width: 26, Height: 26, Contact: 20, Amplitude: 60, Frequency: 0.6,
				Drops: commonDrops, Color: Green,
			},
			EnemyBomber: {
				Kind: EnemyBomber, Health: 60, Speed: 70, Behavior: BehaviorStraight,
				Weapon: WeaponEnemyPellet,
				Score: 300, Cost: 4, Weight: 140, MinLevel: 2,
				Width: 38, Height: 30, Contact: 25,
				Drops: heavyDrops, Color: Orange,
			},
			EnemyTank: {
				Kind: EnemyTank, Health: 140, Speed: 45, Behavior: BehaviorStraight,
				Weapon: WeaponEnemyAimed,
				Score: 500, Cost: 6, Weight: 80, MinLevel: 3,
				Width: 46, Height: 46, Contact: 35,
				Drops: heavyDrops, Color: DarkBlue,
			},
			EnemySniper: {
				Kind: EnemySniper, Health: 30, Speed: 90, Behavior: BehaviorStrafe,
				Weapon: WeaponEnemyAimed,
				Score: 250, Cost: 3, Weight: 120, MinLevel: 2,
				Width: 24, Height: 28, Contact: 15, Amplitude: 120, Frequency: 0.25,
				Drops: commonDrops, Color: LightRed,
			},
			EnemyKamikaze: {
				Kind: EnemyKamikaze, Health: 16, Speed: 240, Behavior: BehaviorKamikaze,
				Score: 180, Cost: 2, Weight: 160, MinLevel: 2,
				Width: 20, Height: 20, Contact: 30,
				Drops: commonDrops, Color: Red,
			},
			EnemyWingman: {
				Kind: EnemyWingman, Health: 50, Speed: 160, Behavior: BehaviorEscort,
				Weapon: WeaponEnemyAimed,
				Score: 200, Cost: 0, Weight: 0, MinLevel: 99,
				Width: 26, Height: 26, Contact: 20,
				Drops: commonDrops, Color: Purple,
			},
		},
		EliteHealthMult: 2.5,
		EliteScoreMult:  3,
		EliteSpeedMult:  1.15,
		EliteTint:       Gold,
		EliteDrops: []DropEntry{
			{Item: ItemNothing, Weight: 300},
			{Item: ItemGem, Weight: 250},
			{Item: ItemShield, Weight: 120},
			{Item: ItemBomb, Weight: 80},
			{Item: ItemVulcan, Weight: 50},
			{Item: ItemLaser, Weight: 50},
			{Item: ItemMissile, Weight: 50},
			{Item: ItemWave, Weight: 50},
			{Item: ItemPlasma, Weight: 50},
		},
		EscortOrbitRadius: 90,
		EscortOrbitSpeed:  1.4,
		DefaultScore:      100,
	}
}
