package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type WeaponData struct {
	Kind                config.WeaponKind
	CooldownMs          float64
	RemainingCooldownMs float64
	Level               int
	BulletCount         int
	Pattern             config.Pattern
	DamageMultiplier    float64
	FireRateMultiplier  float64

	// Set by decision systems, read by the weapon system.
	Trigger bool
	Aim     float64 // radians, 0 = straight down the screen (+Y)
	Volley  int     // shots fired, drives spiral rotation
}

// Weapon is the primary weapon of the player, or the only weapon of an enemy or boss.
var Weapon = donburi.NewComponentType[WeaponData]()

// SecondaryWeapon is the player's second slot.
var SecondaryWeapon = donburi.NewComponentType[WeaponData]()
