package systems

import (
	"math"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
)

// UpdatePresentation turns the events published since its last run into camera shake and
// the frame's pending sound list.
func UpdatePresentation(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	cam := sc.Camera
	audio := sc.Audio
	audio.PendingSFX = audio.PendingSFX[:0]

	audio.LastSeq = w.Events.Since(audio.LastSeq, func(r events.Record) {
		switch ev := r.Payload.(type) {
		case events.CamShake:
			if ev.Intensity >= cam.ShakeIntensity*shakeRemaining(cam.ShakeRemainMs, cam.ShakeDurationMs) {
				cam.ShakeIntensity = ev.Intensity
				cam.ShakeRemainMs = ev.DurationMs
				cam.ShakeDurationMs = ev.DurationMs
			}
		case events.PlaySound:
			if !containsSound(audio.PendingSFX, ev.Sound) && len(audio.PendingSFX) < cfg.Audio.MaxPending {
				audio.PendingSFX = append(audio.PendingSFX, ev.Sound)
			}
		}
	})

	if cam.ShakeRemainMs > 0 {
		cam.ShakeRemainMs -= w.Dt()
	}
	if cam.ShakeRemainMs <= 0 {
		cam.ShakeIntensity, cam.ShakeRemainMs = 0, 0
		cam.Offset.X, cam.Offset.Y = 0, 0
		return nil
	}
	mag := cam.ShakeIntensity * shakeRemaining(cam.ShakeRemainMs, cam.ShakeDurationMs)
	f := float64(w.Frame())
	cam.Offset.X = mag * math.Sin(f*1.7)
	cam.Offset.Y = mag * math.Cos(f*2.3)
	return nil
}

func shakeRemaining(remain, duration float64) float64 {
	if duration <= 0 || remain <= 0 {
		return 0
	}
	return remain / duration
}

func containsSound(list []cfg.SoundID, id cfg.SoundID) bool {
	for _, s := range list {
		if s == id {
			return true
		}
	}
	return false
}
