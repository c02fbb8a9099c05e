package scenes

import (
	"encoding/binary"
	"math"
	"sync"

	cfg "github.com/automoto/skyraid/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - the context can only be created once per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// sfxPlayer plays the snapshot's pending sounds. PCM is synthesized on first use and
// cached per sound.
type sfxPlayer struct {
	ctx    *audio.Context
	cache  map[cfg.SoundID][]byte
	volume float64
}

func newSFXPlayer() *sfxPlayer {
	return &sfxPlayer{
		ctx:    initGlobalAudio(),
		cache:  make(map[cfg.SoundID][]byte),
		volume: cfg.Audio.DefaultSFXVol,
	}
}

func (p *sfxPlayer) play(sounds []cfg.SoundID) {
	if p.volume <= 0 {
		return
	}
	for _, id := range sounds {
		pcm, ok := p.cache[id]
		if !ok {
			tone, found := cfg.Sound.Tones[id]
			if !found {
				continue
			}
			pcm = synthTone(tone, cfg.Audio.SampleRate)
			p.cache[id] = pcm
		}

		volume := p.volume
		if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
			volume *= mult
		}
		player := p.ctx.NewPlayerFromBytes(pcm)
		player.SetVolume(math.Min(volume, 1))
		player.Play()
	}
}

// toggleMute flips between silence and the default volume.
func (p *sfxPlayer) toggleMute() {
	if p.volume > 0 {
		p.volume = 0
		return
	}
	p.volume = cfg.Audio.DefaultSFXVol
}

// synthTone renders a decaying square wave as 16-bit little-endian stereo.
func synthTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Ms / 1000 * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*frac
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := 0.3 * (1 - frac)
		if phase >= 0.5 {
			amp = -amp
		}
		v := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
