package config

import "golang.org/x/image/colornames"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxSpeed float64 // px/s at full stick deflection

	// Combat
	Health          float64
	ShieldMax       float64
	ShieldStart     float64
	ShieldRegen     float64 // per second
	ShieldRegenWait float64 // ms without damage before regen starts
	StartWeapon     WeaponKind

	// Lives and bombs
	StartingLives   int
	StartingBombs   int
	MaxBombs        int
	RespawnInvulnMs float64
	BombDamage      float64

	// Pickups
	HealAmount   float64
	ShieldAmount float64
	GemScore     int

	// Dimensions
	Width  float64
	Height float64
	SpawnX float64
	SpawnY float64
}

// ComboConfig contains kill-streak configuration values
type ComboConfig struct {
	WindowMs   float64
	Thresholds [4]int
	ScoreMult  [5]float64
	DamageMult [5]float64
}

// SpawnConfig contains enemy spawn budget configuration
type SpawnConfig struct {
	CreditRate     float64 // credits per second before modulation
	CreditCap      float64
	SpendThreshold float64
	WavePeriodMs   float64
	WaveAmplitude  float64
	MaxEnemies     int
	MaxPerTick     int

	EliteBaseChance float64
	EliteLevelStep  float64
	EliteMaxChance  float64

	SpawnY float64
	Margin float64
}

// LootConfig contains drop and pickup configuration
type LootConfig struct {
	PityMs           float64
	PickupLifetimeMs float64
	PickupSpeed      float64
	PickupSize       float64
}

// DamageConfig contains damage resolution tuning
type DamageConfig struct {
	DOTIntervalMs     float64
	ShakeThreshold    float64
	ShakePerDamage    float64
	ShakeMax          float64
	ShakeDurationMs   float64
	ShieldBreakShake  float64
	PlayerHitShake    float64
	ContactCooldownMs float64
}

// BulletConfig contains projectile housekeeping values
type BulletConfig struct {
	OffscreenMargin float64
	SlowFieldMs     float64
	BeamLifetimeMs  float64
}

// Config holds the playfield dimensions
type Config struct {
	Width  float64
	Height float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combo ComboConfig
var Spawn SpawnConfig
var Loot LootConfig
var Damage DamageConfig
var Bullet BulletConfig

// Shared RGBA colors
var (
	White        = colornames.White
	Yellow       = colornames.Yellow
	Gold         = colornames.Gold
	Orange       = colornames.Orange
	BrightOrange = colornames.Darkorange
	Red          = colornames.Red
	LightRed     = colornames.Lightcoral
	Green        = colornames.Green
	BrightGreen  = colornames.Lime
	LightGreen   = colornames.Lightgreen
	Blue         = colornames.Royalblue
	DarkBlue     = colornames.Steelblue
	LightBlue    = colornames.Lightskyblue
	Purple       = colornames.Mediumpurple
	Magenta      = colornames.Magenta
)

func init() {
	C = &Config{
		Width:  480,
		Height: 720,
	}

	Player = PlayerConfig{
		MaxSpeed: 300,

		Health:          100,
		ShieldMax:       50,
		ShieldStart:     0,
		ShieldRegen:     4,
		ShieldRegenWait: 3000,
		StartWeapon:     WeaponVulcan,

		StartingLives:   3,
		StartingBombs:   2,
		MaxBombs:        5,
		RespawnInvulnMs: 2000,
		BombDamage:      80,

		HealAmount:   30,
		ShieldAmount: 25,
		GemScore:     250,

		Width:  24,
		Height: 24,
		SpawnX: 240,
		SpawnY: 620,
	}

	Combo = ComboConfig{
		WindowMs:   5000,
		Thresholds: [4]int{10, 25, 50, 100},
		ScoreMult:  [5]float64{1.0, 1.5, 2.0, 3.0, 5.0},
		DamageMult: [5]float64{1.0, 1.1, 1.25, 1.5, 2.0},
	}

	Spawn = SpawnConfig{
		CreditRate:     1.4,
		CreditCap:      14,
		SpendThreshold: 2,
		WavePeriodMs:   12000,
		WaveAmplitude:  0.35,
		MaxEnemies:     24,
		MaxPerTick:     3,

		EliteBaseChance: 0.04,
		EliteLevelStep:  0.015,
		EliteMaxChance:  0.35,

		SpawnY: -30,
		Margin: 30,
	}

	Loot = LootConfig{
		PityMs:           20000,
		PickupLifetimeMs: 9000,
		PickupSpeed:      70,
		PickupSize:       18,
	}

	Damage = DamageConfig{
		DOTIntervalMs:     200,
		ShakeThreshold:    50,
		ShakePerDamage:    0.1,
		ShakeMax:          14,
		ShakeDurationMs:   250,
		ShieldBreakShake:  4,
		PlayerHitShake:    3,
		ContactCooldownMs: 500,
	}

	Bullet = BulletConfig{
		OffscreenMargin: 40,
		SlowFieldMs:     2500,
		BeamLifetimeMs:  120,
	}
}
