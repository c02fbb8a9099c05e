package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind     config.EnemyKind
	Behavior config.Behavior
	Elite    bool
	AgeMs    float64
	AnchorX  float64 // x at spawn, sine and strafe sway around it
	Speed    float64 // resolved at spawn, includes difficulty and elite scaling
}

// EscortData links a wingman to its boss by id. The boss may be gone at any time.
type EscortData struct {
	Boss    donburi.Entity
	HasBoss bool
	Angle   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
var Escort = donburi.NewComponentType[EscortData]()
