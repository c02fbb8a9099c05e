package events

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

// HitKind tells Damage how a hit was produced.
type HitKind int

const (
	HitDirect HitKind = iota
	HitExplosion
	HitChain
	HitBomb
	HitContact
	HitBurn
)

// Hit requests Damage to apply Damage to Victim.
type Hit struct {
	Victim     donburi.Entity
	Source     donburi.Entity
	Damage     float64
	Weapon     config.WeaponKind
	Kind       HitKind
	X, Y       float64
	FromPlayer bool
}

// Kill is published once per death.
type Kill struct {
	Victim     donburi.Entity
	Killer     donburi.Entity
	Score      int
	X, Y       float64
	IsBoss     bool
	IsPlayer   bool
	FromPlayer bool
	Enemy      config.EnemyKind
	Elite      bool
	Drops      []config.DropEntry
}

type Pickup struct {
	Player donburi.Entity
	Item   config.ItemKind
	X, Y   float64
}

type WeaponFired struct {
	Owner   donburi.Entity
	Weapon  config.WeaponKind
	Bullets int
}

type WeaponEquipped struct {
	Primary   config.WeaponKind
	Secondary config.WeaponKind
	Level     int
	Synergy   config.SynergyKind
}

type BossSpawned struct {
	Boss donburi.Entity
	Kind config.BossKind
}

type BossPhaseChange struct {
	Boss  donburi.Entity
	Kind  config.BossKind
	Phase int
}

type ComboBreak struct {
	Combo  int
	Reason string
}

type ComboUpgrade struct {
	Combo int
	Level int
}

type BerserkMode struct {
	Combo int
}

type CamShake struct {
	Intensity  float64
	DurationMs float64
}

type PlaySound struct {
	Sound config.SoundID
}

// ScreenClear removes every enemy bullet. Source is a boss or the player (bomb).
type ScreenClear struct {
	Source donburi.Entity
}

type ShieldBreak struct {
	Entity donburi.Entity
}

// Bounce is published when a bullet reflects off a playfield edge.
type Bounce struct {
	Bullet donburi.Entity
	Owner  donburi.Entity
	Weapon config.WeaponKind
	X, Y   float64
}

// Explosion is published when an explosive bullet detonates.
type Explosion struct {
	Bullet donburi.Entity
	Owner  donburi.Entity
	Weapon config.WeaponKind
	X, Y   float64
	Radius float64
	Damage float64
}

type LevelUp struct {
	Level int
	New   bool // first time this level was reached
}

type DifficultyChanged struct {
	From, To config.DifficultyMode
	Score    float64
}

type PlayerRespawn struct {
	Player donburi.Entity
	Lives  int
}

type GameOver struct {
	Score int
	Level int
}
