package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShot
	SoundHit
	SoundExplosion
	SoundDeath
	SoundShieldBreak
	SoundBomb
	// Progression sounds
	SoundPickup
	SoundPowerUp
	SoundComboUp
	SoundBerserk
	SoundComboBreak
	// Boss sounds
	SoundBossWarning
	SoundBossPhase
	SoundLevelUp
)

// AudioConfig contains audio configuration values
type AudioConfig struct {
	MaxPending    int // sounds kept per frame for the audio collaborator
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized effect: a square wave sliding from Freq to EndFreq.
type Tone struct {
	Freq    float64
	EndFreq float64
	Ms      float64
}

// SoundConfig maps sound IDs to the tones the viewer plays
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		MaxPending:    16,
		SampleRate:    44100,
		DefaultSFXVol: 0.4,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundShot:        {Freq: 880, EndFreq: 660, Ms: 40},
			SoundHit:         {Freq: 220, EndFreq: 180, Ms: 50},
			SoundExplosion:   {Freq: 140, EndFreq: 40, Ms: 220},
			SoundDeath:       {Freq: 330, EndFreq: 55, Ms: 500},
			SoundShieldBreak: {Freq: 1200, EndFreq: 300, Ms: 180},
			SoundBomb:        {Freq: 90, EndFreq: 30, Ms: 600},
			SoundPickup:      {Freq: 660, EndFreq: 990, Ms: 90},
			SoundPowerUp:     {Freq: 440, EndFreq: 1320, Ms: 250},
			SoundComboUp:     {Freq: 770, EndFreq: 1100, Ms: 120},
			SoundBerserk:     {Freq: 300, EndFreq: 1500, Ms: 400},
			SoundComboBreak:  {Freq: 500, EndFreq: 200, Ms: 200},
			SoundBossWarning: {Freq: 180, EndFreq: 180, Ms: 700},
			SoundBossPhase:   {Freq: 250, EndFreq: 120, Ms: 350},
			SoundLevelUp:     {Freq: 523, EndFreq: 1046, Ms: 450},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:       1.5,
			SoundExplosion: 1.5,
		},
	}
}
