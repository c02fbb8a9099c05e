package components

import (
	cfg "github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the sound requests of the current frame for the audio collaborator
// (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
	// LastSeq is the last event sequence number the presentation system consumed.
	LastSeq uint64
}

var Audio = donburi.NewComponentType[AudioData]()
