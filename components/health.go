package components

import "github.com/yohamta/donburi"

type HealthData struct {
	HP  float64
	Max float64
}

// Fraction returns HP/Max, 0 for a zero Max.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.HP / h.Max
}

// Clamp keeps HP within [0, Max].
func (h *HealthData) Clamp() {
	if h.HP < 0 {
		h.HP = 0
	}
	if h.HP > h.Max {
		h.HP = h.Max
	}
}

type ShieldData struct {
	Value        float64
	Max          float64
	RegenPerSec  float64
	RegenDelayMs float64
	SinceHitMs   float64
	// Broken is set when the shield is emptied by damage and cleared once it holds charge
	// again, so a break is reported once.
	Broken bool
}

// Restore adds charge up to Max.
func (s *ShieldData) Restore(amount float64) {
	s.Value += amount
	if s.Value > s.Max {
		s.Value = s.Max
	}
	if s.Value < 0 {
		s.Value = 0
	}
	if s.Value > 0 {
		s.Broken = false
	}
}

var Health = donburi.NewComponentType[HealthData]()
var Shield = donburi.NewComponentType[ShieldData]()
