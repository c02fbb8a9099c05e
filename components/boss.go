package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type BossTagData struct {
	Kind config.BossKind
}

// BossAIData is the phase state machine of a boss.
type BossAIData struct {
	PhaseIndex    int
	PhaseTimerMs  float64 // time spent in the current phase
	MoveTimerMs   float64 // drives the closed-form movement patterns
	SummonTimerMs float64
	AnchorX       float64
	AnchorY       float64
}

// BossEntranceData marks a boss still flying in. It is removed together with the
// SpeedOverride once TargetY is reached.
type BossEntranceData struct {
	TargetY float64
	Speed   float64
}

type SpeedStatData struct {
	BaseLinear float64
	MaxLinear  float64
}

type SpeedOverrideData struct {
	MaxLinear float64
}

var BossTag = donburi.NewComponentType[BossTagData]()
var BossAI = donburi.NewComponentType[BossAIData]()
var BossEntrance = donburi.NewComponentType[BossEntranceData]()
var SpeedStat = donburi.NewComponentType[SpeedStatData]()
var SpeedOverride = donburi.NewComponentType[SpeedOverrideData]()
