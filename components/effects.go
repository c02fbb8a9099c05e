package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TimeSlowData scales an entity's displacement while active.
type TimeSlowData struct {
	Factor      float64 // 0.5 = half speed
	RemainingMs float64
}

var TimeSlow = donburi.NewComponentType[TimeSlowData]()

// InvulnerableData makes Damage skip the entity while RemainingMs > 0.
type InvulnerableData struct {
	RemainingMs float64
}

var Invulnerable = donburi.NewComponentType[InvulnerableData]()

// SpeedModifierData multiplies the effective max speed until RemainingMs runs out.
type SpeedModifierData struct {
	Multiplier  float64
	RemainingMs float64
}

var SpeedModifier = donburi.NewComponentType[SpeedModifierData]()

// DamageOverTimeData applies DamagePerTick every IntervalMs until RemainingMs runs out.
type DamageOverTimeData struct {
	DamagePerTick float64
	IntervalMs    float64
	TickTimerMs   float64
	RemainingMs   float64
	Source        donburi.Entity
}

var DamageOverTime = donburi.NewComponentType[DamageOverTimeData]()

// LifetimeData expires bullets, pickups and short-lived effects.
type LifetimeData struct {
	RemainingMs float64
}

var Lifetime = donburi.NewComponentType[LifetimeData]()

// SlowFieldData is an area that applies TimeSlow to enemies inside it.
type SlowFieldData struct {
	Radius float64
	Factor float64
}

var SlowField = donburi.NewComponentType[SlowFieldData]()

// BeamData is a chain lightning segment kept for the renderer.
type BeamData struct {
	FromX, FromY float64
	ToX, ToY     float64
}

var Beam = donburi.NewComponentType[BeamData]()

// TintData is a colour overlay whose alpha is driven by a tween.
type TintData struct {
	Color color.RGBA
	Alpha float32
	Fade  *gween.Tween // nil keeps Alpha constant
}

var Tint = donburi.NewComponentType[TintData]()
