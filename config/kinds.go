package config

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a table lookup or override names a kind that does not exist.
var ErrUnknownKind = errors.New("unknown kind")

// WeaponKind identifies a weapon. Player weapons come first, enemy and boss weapons after.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponVulcan
	WeaponLaser
	WeaponMissile
	WeaponWave
	WeaponPlasma

	WeaponEnemyPellet
	WeaponEnemyAimed
	WeaponBossSpread
	WeaponBossRing
	WeaponBossSpiral
	WeaponBossBarrage
	WeaponBossHoming
	weaponKindCount
)

var weaponNames = [...]string{
	WeaponNone:        "none",
	WeaponVulcan:      "vulcan",
	WeaponLaser:       "laser",
	WeaponMissile:     "missile",
	WeaponWave:        "wave",
	WeaponPlasma:      "plasma",
	WeaponEnemyPellet: "enemy_pellet",
	WeaponEnemyAimed:  "enemy_aimed",
	WeaponBossSpread:  "boss_spread",
	WeaponBossRing:    "boss_ring",
	WeaponBossSpiral:  "boss_spiral",
	WeaponBossBarrage: "boss_barrage",
	WeaponBossHoming:  "boss_homing",
}

func (k WeaponKind) String() string {
	if k < 0 || k >= weaponKindCount {
		return fmt.Sprintf("weapon(%d)", int(k))
	}
	return weaponNames[k]
}

// PlayerWeapon reports whether the kind can be equipped by the player.
func (k WeaponKind) PlayerWeapon() bool {
	return k >= WeaponVulcan && k <= WeaponPlasma
}

// Pattern is the bullet emission shape of a weapon.
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternSpread
	PatternRing
	PatternAimed
	PatternSpiral
	PatternHoming
)

// EnemyKind identifies a regular (non boss) enemy.
type EnemyKind int

const (
	EnemyScout EnemyKind = iota
	EnemyFighter
	EnemyBomber
	EnemyTank
	EnemySniper
	EnemyKamikaze
	EnemyWingman
	enemyKindCount
)

var enemyNames = [...]string{
	EnemyScout:    "scout",
	EnemyFighter:  "fighter",
	EnemyBomber:   "bomber",
	EnemyTank:     "tank",
	EnemySniper:   "sniper",
	EnemyKamikaze: "kamikaze",
	EnemyWingman:  "wingman",
}

func (k EnemyKind) String() string {
	if k < 0 || k >= enemyKindCount {
		return fmt.Sprintf("enemy(%d)", int(k))
	}
	return enemyNames[k]
}

// Behavior is the steering routine an enemy runs every tick.
type Behavior int

const (
	BehaviorStraight Behavior = iota
	BehaviorSine
	BehaviorChase
	BehaviorStrafe
	BehaviorKamikaze
	BehaviorEscort
)

// BossKind identifies a boss.
type BossKind int

const (
	BossGuardian BossKind = iota
	BossDestroyer
	BossTitan
	BossPhantom
	bossKindCount
)

var bossNames = [...]string{
	BossGuardian:  "guardian",
	BossDestroyer: "destroyer",
	BossTitan:     "titan",
	BossPhantom:   "phantom",
}

func (k BossKind) String() string {
	if k < 0 || k >= bossKindCount {
		return fmt.Sprintf("boss(%d)", int(k))
	}
	return bossNames[k]
}

// MovementPattern is the closed-form movement a boss phase uses.
type MovementPattern int

const (
	MoveSine MovementPattern = iota
	MoveFigure8
	MoveCircular
	MoveZigzag
	MoveTracking
	MoveTeleport
	MoveAdaptive
	MoveSlowDescent
	MoveAggressive
)

// PhaseEvent is a one-shot action fired when a boss enters a phase.
type PhaseEvent int

const (
	PhaseEventNone PhaseEvent = iota
	PhaseEventScreenClear
	PhaseEventSummonWingmen
	PhaseEventEnrage
)

// ItemKind identifies a pickup or a loot table outcome.
type ItemKind int

const (
	ItemNothing ItemKind = iota
	ItemVulcan
	ItemLaser
	ItemMissile
	ItemWave
	ItemPlasma
	ItemHealth
	ItemShield
	ItemBomb
	ItemGem
	itemKindCount
)

var itemNames = [...]string{
	ItemNothing: "nothing",
	ItemVulcan:  "vulcan",
	ItemLaser:   "laser",
	ItemMissile: "missile",
	ItemWave:    "wave",
	ItemPlasma:  "plasma",
	ItemHealth:  "health",
	ItemShield:  "shield",
	ItemBomb:    "bomb",
	ItemGem:     "gem",
}

func (k ItemKind) String() string {
	if k < 0 || k >= itemKindCount {
		return fmt.Sprintf("item(%d)", int(k))
	}
	return itemNames[k]
}

// Weapon returns the weapon granted by a weapon item.
func (k ItemKind) Weapon() (WeaponKind, bool) {
	switch k {
	case ItemVulcan:
		return WeaponVulcan, true
	case ItemLaser:
		return WeaponLaser, true
	case ItemMissile:
		return WeaponMissile, true
	case ItemWave:
		return WeaponWave, true
	case ItemPlasma:
		return WeaponPlasma, true
	}
	return WeaponNone, false
}

// Powerup reports whether the item counts as a powerup for drop scaling.
func (k ItemKind) Powerup() bool {
	_, weapon := k.Weapon()
	return weapon || k == ItemShield || k == ItemBomb
}

// ParseEnemyKind maps a table name to an EnemyKind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	for k, n := range enemyNames {
		if n == name {
			return EnemyKind(k), nil
		}
	}
	return 0, fmt.Errorf("enemy %q: %w", name, ErrUnknownKind)
}

// ParseItemKind maps a table name to an ItemKind.
func ParseItemKind(name string) (ItemKind, error) {
	for k, n := range itemNames {
		if n == name {
			return ItemKind(k), nil
		}
	}
	return 0, fmt.Errorf("item %q: %w", name, ErrUnknownKind)
}

// Faction decides who a bullet can hurt.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)
