package factory

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
)

// NewWeapon builds the weapon component for a kind at a level. It reports false for a
// kind missing from the weapon table.
func NewWeapon(kind cfg.WeaponKind, level int) (components.WeaponData, bool) {
	wc, ok := cfg.LookupWeapon(kind)
	if !ok {
		return components.WeaponData{}, false
	}
	if level < 1 {
		level = 1
	}
	return components.WeaponData{
		Kind:               kind,
		CooldownMs:         wc.CooldownMs,
		Level:              level,
		BulletCount:        BulletCount(wc, level),
		Pattern:            wc.Pattern,
		DamageMultiplier:   1,
		FireRateMultiplier: 1,
	}, true
}

// BulletCount returns the bullets per volley of a weapon at a level.
func BulletCount(wc cfg.WeaponTypeConfig, level int) int {
	n := wc.BulletCount + wc.CountPerLvl*(level-1)
	if n < 1 {
		n = 1
	}
	return n
}
