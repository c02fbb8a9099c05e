package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const (
	levelDamageStep = 0.15 // player damage bonus per weapon level above 1
	spiralStep      = 0.35 // radians the spiral turns per volley
	laneSpacing     = 8.0  // px between parallel straight shots
)

// UpdateWeapons ticks cooldowns and fires every triggered weapon. Bullets are created
// after all weapons were visited.
func UpdateWeapons(w *world.World) error {
	var shots []factory.BulletSpec

	for _, e := range collect(w, liveArmed) {
		entry := w.Entry(e)
		t := components.Transform.Get(entry)
		isPlayer := entry.HasComponent(tags.Player)

		shots = tickWeapon(w, entry, components.Weapon.Get(entry), t, isPlayer, shots)
		if entry.HasComponent(components.SecondaryWeapon) {
			shots = tickWeapon(w, entry, components.SecondaryWeapon.Get(entry), t, isPlayer, shots)
		}
	}

	for _, s := range shots {
		factory.CreateBullet(w, s)
	}
	return nil
}

func tickWeapon(w *world.World, owner *donburi.Entry, wd *components.WeaponData, t *components.TransformData, isPlayer bool, shots []factory.BulletSpec) []factory.BulletSpec {
	wd.RemainingCooldownMs -= w.Dt()
	if !wd.Trigger || wd.RemainingCooldownMs > 0 {
		if wd.RemainingCooldownMs < 0 {
			wd.RemainingCooldownMs = 0
		}
		return shots
	}

	wc, ok := cfg.LookupWeapon(wd.Kind)
	if !ok {
		w.Log.Warn("weapon kind missing from table, volley skipped", zap.Stringer("weapon", wd.Kind))
		wd.RemainingCooldownMs = 0
		return shots
	}
	wd.RemainingCooldownMs = wd.CooldownMs / orOne(wd.FireRateMultiplier)

	faction := cfg.FactionEnemy
	damage := wc.Damage * orOne(wd.DamageMultiplier)
	if isPlayer {
		faction = cfg.FactionPlayer
		damage *= 1 + levelDamageStep*float64(wd.Level-1)
	}

	angles, offsets := VolleyAngles(wd, wc)
	for i, a := range angles {
		shots = append(shots, factory.BulletSpec{
			Owner:   owner.Entity(),
			Faction: faction,
			Weapon:  wd.Kind,
			X:       t.X + offsets[i],
			Y:       t.Y,
			Angle:   a,
			Damage:  damage,
		})
	}
	wd.Volley++

	events.Emit(w.Events, events.WeaponFired{Owner: owner.Entity(), Weapon: wd.Kind, Bullets: len(angles)})
	if isPlayer {
		playSound(w, cfg.SoundShot)
	}
	return shots
}

// VolleyAngles returns the aim angle and horizontal offset of every bullet in one volley.
func VolleyAngles(wd *components.WeaponData, wc cfg.WeaponTypeConfig) ([]float64, []float64) {
	n := wd.BulletCount
	if n < 1 {
		n = 1
	}
	angles := make([]float64, n)
	offsets := make([]float64, n)
	mid := float64(n-1) / 2

	switch wd.Pattern {
	case cfg.PatternStraight:
		for i := range angles {
			angles[i] = wd.Aim
			offsets[i] = (float64(i) - mid) * laneSpacing
		}
	case cfg.PatternRing:
		for i := range angles {
			angles[i] = wd.Aim + 2*math.Pi*float64(i)/float64(n)
		}
	case cfg.PatternSpiral:
		base := float64(wd.Volley) * spiralStep
		for i := range angles {
			angles[i] = base + 2*math.Pi*float64(i)/float64(n)
		}
	default: // spread, aimed and homing fan out around the aim
		for i := range angles {
			angles[i] = wd.Aim + (float64(i)-mid)*wc.SpreadAngle
		}
	}
	return angles, offsets
}
