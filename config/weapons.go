package config

import "image/color"

// WeaponTypeConfig describes one weapon kind.
type WeaponTypeConfig struct {
	Kind        WeaponKind
	Pattern     Pattern
	CooldownMs  float64
	BulletSpeed float64 // px/s
	Damage      float64
	BulletCount int // at level 1
	CountPerLvl int // extra bullets per level above 1
	SpreadAngle float64 // radians between adjacent bullets
	Pierce      int     // extra enemies a bullet can pass through
	Bounces     int     // playfield edge reflections before expiring
	Explodes    bool
	Radius      float64 // explosion radius
	TurnRate    float64 // rad/s, homing only
	BulletW     float64
	BulletH     float64
	LifetimeMs  float64
	Color       color.RGBA
}

// WeaponConfig holds all weapon types and player loadout limits.
type WeaponConfig struct {
	Types    map[WeaponKind]WeaponTypeConfig
	MaxLevel int
}

var Weapon WeaponConfig

// LookupWeapon returns the configuration for a weapon kind.
func LookupWeapon(kind WeaponKind) (WeaponTypeConfig, bool) {
	w, ok := Weapon.Types[kind]
	return w, ok
}

func init() {
	Weapon = WeaponConfig{
		MaxLevel: 5,
		Types: map[WeaponKind]WeaponTypeConfig{
			WeaponVulcan: {
				Kind: WeaponVulcan, Pattern: PatternSpread,
				CooldownMs: 110, BulletSpeed: 720, Damage: 6,
				BulletCount: 1, CountPerLvl: 1, SpreadAngle: 0.12,
				BulletW: 4, BulletH: 10, LifetimeMs: 1600, Color: Yellow,
			},
			WeaponLaser: {
				Kind: WeaponLaser, Pattern: PatternStraight,
				CooldownMs: 180, BulletSpeed: 1100, Damage: 14,
				BulletCount: 1, Pierce: 2,
				BulletW: 3, BulletH: 26, LifetimeMs: 1000, Color: LightBlue,
			},
			WeaponMissile: {
				Kind: WeaponMissile, Pattern: PatternHoming,
				CooldownMs: 520, BulletSpeed: 420, Damage: 22,
				BulletCount: 1, CountPerLvl: 1, SpreadAngle: 0.35,
				Explodes: true, Radius: 48, TurnRate: 4.5,
				BulletW: 8, BulletH: 14, LifetimeMs: 3000, Color: Orange,
			},
			WeaponWave: {
				Kind: WeaponWave, Pattern: PatternSpread,
				CooldownMs: 260, BulletSpeed: 520, Damage: 9,
				BulletCount: 3, CountPerLvl: 1, SpreadAngle: 0.3,
				Bounces: 2,
				BulletW: 10, BulletH: 10, LifetimeMs: 2400, Color: BrightGreen,
			},
			WeaponPlasma: {
				Kind: WeaponPlasma, Pattern: PatternStraight,
				CooldownMs: 340, BulletSpeed: 640, Damage: 30,
				BulletCount: 1,
				BulletW: 12, BulletH: 12, LifetimeMs: 1400, Color: Magenta,
			},
			WeaponEnemyPellet: {
				Kind: WeaponEnemyPellet, Pattern: PatternStraight,
				CooldownMs: 1400, BulletSpeed: 240, Damage: 10,
				BulletCount: 1,
				BulletW: 6, BulletH: 6, LifetimeMs: 4000, Color: Red,
			},
			WeaponEnemyAimed: {
				Kind: WeaponEnemyAimed, Pattern: PatternAimed,
				CooldownMs: 1800, BulletSpeed: 320, Damage: 14,
				BulletCount: 1,
				BulletW: 6, BulletH: 6, LifetimeMs: 4000, Color: LightRed,
			},
			WeaponBossSpread: {
				Kind: WeaponBossSpread, Pattern: PatternSpread,
				CooldownMs: 900, BulletSpeed: 260, Damage: 12,
				BulletCount: 5, SpreadAngle: 0.22,
				BulletW: 8, BulletH: 8, LifetimeMs: 5000, Color: Red,
			},
			WeaponBossRing: {
				Kind: WeaponBossRing, Pattern: PatternRing,
				CooldownMs: 1300, BulletSpeed: 200, Damage: 12,
				BulletCount: 16,
				BulletW: 8, BulletH: 8, LifetimeMs: 5000, Color: Purple,
			},
			WeaponBossSpiral: {
				Kind: WeaponBossSpiral, Pattern: PatternSpiral,
				CooldownMs: 120, BulletSpeed: 220, Damage: 10,
				BulletCount: 2,
				BulletW: 7, BulletH: 7, LifetimeMs: 5000, Color: Magenta,
			},
			WeaponBossBarrage: {
				Kind: WeaponBossBarrage, Pattern: PatternAimed,
				CooldownMs: 420, BulletSpeed: 340, Damage: 14,
				BulletCount: 3, SpreadAngle: 0.08,
				BulletW: 7, BulletH: 7, LifetimeMs: 5000, Color: BrightOrange,
			},
			WeaponBossHoming: {
				Kind: WeaponBossHoming, Pattern: PatternHoming,
				CooldownMs: 1600, BulletSpeed: 180, Damage: 18,
				BulletCount: 2, SpreadAngle: 0.6, TurnRate: 1.6,
				BulletW: 9, BulletH: 9, LifetimeMs: 4500, Color: Orange,
			},
		},
	}
}
