package config

// SynergyKind identifies a weapon pair bonus.
type SynergyKind int

const (
	SynergyNone SynergyKind = iota
	SynergyPrism
	SynergyFirestorm
	SynergyTesla
	SynergyGravityWell
	SynergyAegis
	SynergyOverdrive
)

var synergyNames = map[SynergyKind]string{
	SynergyNone:        "none",
	SynergyPrism:       "prism",
	SynergyFirestorm:   "firestorm",
	SynergyTesla:       "tesla",
	SynergyGravityWell: "gravity_well",
	SynergyAegis:       "aegis",
	SynergyOverdrive:   "overdrive",
}

func (k SynergyKind) String() string {
	if n, ok := synergyNames[k]; ok {
		return n
	}
	return "synergy(?)"
}

// TriggerKind is the gameplay moment a synergy listens for.
type TriggerKind int

const (
	TriggerHit TriggerKind = iota
	TriggerBounce
	TriggerExplode
)

// EffectKind is the payload of a triggered synergy.
type EffectKind int

const (
	EffectChainLightning EffectKind = iota
	EffectDamageMultiplier
	EffectBurn
	EffectShieldRestore
	EffectSlowField
	EffectSpeedBoost
)

// SynergyConfig describes a two-weapon bonus.
type SynergyConfig struct {
	Kind    SynergyKind
	Weapons [2]WeaponKind
	// Main is the weapon that should sit in the primary slot while the synergy is active.
	// WeaponNone keeps the slots as equipped.
	Main WeaponKind

	// Source restricts triggers to bullets of this weapon; WeaponNone accepts either.
	Source  WeaponKind
	Trigger TriggerKind
	Chance  float64 // 1.0 = always
	Effect  EffectKind

	Value      float64 // multiplier, damage per tick, shield amount, speed multiplier
	DurationMs float64
	Radius     float64
	Targets    int // chain lightning jumps
}

var Synergies []SynergyConfig

// SynergyFor returns the synergy declared for a pair of weapon kinds, in either order.
func SynergyFor(a, b WeaponKind) (SynergyConfig, bool) {
	for _, s := range Synergies {
		if (s.Weapons[0] == a && s.Weapons[1] == b) || (s.Weapons[0] == b && s.Weapons[1] == a) {
			return s, true
		}
	}
	return SynergyConfig{}, false
}

// LookupSynergy returns the configuration for a synergy kind.
func LookupSynergy(kind SynergyKind) (SynergyConfig, bool) {
	for _, s := range Synergies {
		if s.Kind == kind {
			return s, true
		}
	}
	return SynergyConfig{}, false
}

func init() {
	Synergies = []SynergyConfig{
		{
			Kind: SynergyPrism, Weapons: [2]WeaponKind{WeaponVulcan, WeaponLaser}, Main: WeaponLaser,
			Source: WeaponLaser, Trigger: TriggerHit, Chance: 1, Effect: EffectDamageMultiplier,
			Value: 1.5,
		},
		{
			Kind: SynergyFirestorm, Weapons: [2]WeaponKind{WeaponVulcan, WeaponMissile}, Main: WeaponMissile,
			Source: WeaponMissile, Trigger: TriggerExplode, Chance: 1, Effect: EffectBurn,
			Value: 4, DurationMs: 2000,
		},
		{
			Kind: SynergyTesla, Weapons: [2]WeaponKind{WeaponLaser, WeaponPlasma}, Main: WeaponPlasma,
			Trigger: TriggerHit, Chance: 0.25, Effect: EffectChainLightning,
			Value: 12, Radius: 140, Targets: 3,
		},
		{
			Kind: SynergyGravityWell, Weapons: [2]WeaponKind{WeaponMissile, WeaponWave}, Main: WeaponMissile,
			Source: WeaponMissile, Trigger: TriggerExplode, Chance: 1, Effect: EffectSlowField,
			Value: 0.45, DurationMs: 2500, Radius: 90,
		},
		{
			Kind: SynergyAegis, Weapons: [2]WeaponKind{WeaponWave, WeaponPlasma}, Main: WeaponWave,
			Source: WeaponWave, Trigger: TriggerBounce, Chance: 0.3, Effect: EffectShieldRestore,
			Value: 10, DurationMs: 400,
		},
		{
			Kind: SynergyOverdrive, Weapons: [2]WeaponKind{WeaponVulcan, WeaponWave}, Main: WeaponNone,
			Trigger: TriggerHit, Chance: 0.1, Effect: EffectSpeedBoost,
			Value: 1.35, DurationMs: 1500,
		},
	}
}
