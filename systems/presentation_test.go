package systems

import (
	"testing"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/stretchr/testify/require"
)

func TestSoundsAreDeduplicatedPerFrame(t *testing.T) {
	w := newTestWorld(t)
	audio := scalars(t, w).Audio

	w.BeginFrame(frameMs)
	playSound(w, cfg.SoundHit)
	playSound(w, cfg.SoundHit)
	playSound(w, cfg.SoundExplosion)
	require.NoError(t, UpdatePresentation(w))
	require.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundExplosion}, audio.PendingSFX)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdatePresentation(w))
	require.Empty(t, audio.PendingSFX)
}

func TestStrongerShakeWins(t *testing.T) {
	w := newTestWorld(t)
	cam := scalars(t, w).Camera

	w.BeginFrame(frameMs)
	shake(w, 10)
	shake(w, 4)
	require.NoError(t, UpdatePresentation(w))
	require.Equal(t, 10.0, cam.ShakeIntensity)
	require.InDelta(t, cfg.Damage.ShakeDurationMs-frameMs, cam.ShakeRemainMs, 1e-9)
}

func TestShakeDecaysToRest(t *testing.T) {
	w := newTestWorld(t)
	cam := scalars(t, w).Camera

	w.BeginFrame(frameMs)
	events.Emit(w.Events, events.CamShake{Intensity: 6, DurationMs: 40})
	require.NoError(t, UpdatePresentation(w))
	require.Greater(t, cam.ShakeRemainMs, 0.0)

	for i := 0; i < 3; i++ {
		w.BeginFrame(frameMs)
		require.NoError(t, UpdatePresentation(w))
	}
	require.Zero(t, cam.ShakeIntensity)
	require.Zero(t, cam.Offset.X)
	require.Zero(t, cam.Offset.Y)
}
