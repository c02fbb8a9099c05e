package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Lives  int
	Bombs  int
	Firing bool
	// BombHeld tracks the previous bombing intent so a held button fires one bomb.
	BombHeld          bool
	ContactCooldownMs float64
}

var Player = donburi.NewComponentType[PlayerData]()

// LoadoutData caches the weapon pair the active synergy was computed for.
type LoadoutData struct {
	Primary   config.WeaponKind
	Secondary config.WeaponKind
	Synergy   config.SynergyKind
}

var Loadout = donburi.NewComponentType[LoadoutData]()
