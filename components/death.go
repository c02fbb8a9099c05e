package components

import "github.com/yohamta/donburi"

// DestroyReason records why an entity was scheduled for removal.
type DestroyReason int

const (
	ReasonKilled DestroyReason = iota
	ReasonExpired
	ReasonOffscreen
	ReasonEscaped
	ReasonHit
	ReasonCollected
	ReasonCleared
)

func (r DestroyReason) String() string {
	switch r {
	case ReasonKilled:
		return "killed"
	case ReasonExpired:
		return "expired"
	case ReasonOffscreen:
		return "offscreen"
	case ReasonEscaped:
		return "escaped"
	case ReasonHit:
		return "hit"
	case ReasonCollected:
		return "collected"
	case ReasonCleared:
		return "cleared"
	}
	return "unknown"
}

// DestroyData marks an entity for removal by the cleanup system. It is written once and
// never removed; Frame is the tick that set it.
type DestroyData struct {
	Reason DestroyReason
	Frame  uint64
}

var Destroy = donburi.NewComponentType[DestroyData]()
