package systems

import (
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/stretchr/testify/require"
)

func TestEscortFallsBackToChaseWithoutBoss(t *testing.T) {
	w := newTestWorld(t)
	newTestPlayer(t, w)
	boss, ok := factory.CreateBoss(w, cfg.BossGuardian, cfg.C.Width/2)
	require.True(t, ok)
	escort, ok := factory.CreateEscort(w, boss.Entity(), 0, cfg.ModifiersFor(cfg.DifficultyNormal))
	require.True(t, ok)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateEnemyAI(w))
	require.True(t, components.Escort.Get(escort).HasBoss)

	require.True(t, w.MarkDestroyed(boss, components.ReasonKilled))
	w.BeginFrame(frameMs)
	require.NoError(t, UpdateEnemyAI(w))

	require.False(t, components.Escort.Get(escort).HasBoss)
	vel := components.Velocity.Get(escort)
	require.InDelta(t, EffectiveMaxSpeed(escort)*0.6, vel.VY, 1e-9)
}

func TestEnemyLeavingPlayfieldIsTagged(t *testing.T) {
	w := newTestWorld(t)
	e := newTestEnemy(t, w, 100, cfg.C.Height+cfg.Bullet.OffscreenMargin+1, 10)

	w.BeginFrame(frameMs)
	require.NoError(t, UpdateEnemyAI(w))

	require.True(t, e.HasComponent(components.Destroy))
	require.Equal(t, components.ReasonEscaped, components.Destroy.Get(e).Reason)
}
