package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Owner    donburi.Entity
	Faction  config.Faction
	Weapon   config.WeaponKind
	Damage   float64
	Pierce   int // remaining extra targets
	Bounces  int // remaining edge reflections
	Explodes bool
	Radius   float64
	// Hits keeps pierce from striking the same entity twice.
	Hits map[donburi.Entity]struct{}
}

// HomingData steers a bullet toward Target. The target is a weak reference.
type HomingData struct {
	Target    donburi.Entity
	HasTarget bool
	TurnRate  float64 // rad/s
	Speed     float64
}

type PickupData struct {
	Item config.ItemKind
}

var Bullet = donburi.NewComponentType[BulletData]()
var Homing = donburi.NewComponentType[HomingData]()
var Pickup = donburi.NewComponentType[PickupData]()
