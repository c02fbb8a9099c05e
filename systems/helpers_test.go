package systems

import (
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frameMs = 16.0

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(42, nil)
	factory.CreateGlobals(w, 1, 1, true)
	return w
}

func newTestPlayer(t *testing.T, w *world.World) *donburi.Entry {
	t.Helper()
	p, err := factory.CreatePlayer(w)
	require.NoError(t, err)
	return p
}

func newTestEnemy(t *testing.T, w *world.World, x, y, hp float64) *donburi.Entry {
	t.Helper()
	e, ok := factory.CreateEnemy(w, cfg.EnemyScout, x, y, false, cfg.ModifiersFor(cfg.DifficultyNormal))
	require.True(t, ok)
	components.Health.SetValue(e, components.HealthData{HP: hp, Max: hp})
	return e
}

func scalars(t *testing.T, w *world.World) *world.Scalars {
	t.Helper()
	sc, err := w.Scalars()
	require.NoError(t, err)
	return sc
}

func collectEvents[T any](w *world.World) []T {
	var out []T
	events.Each(w.Events, func(ev T) { out = append(out, ev) })
	return out
}
