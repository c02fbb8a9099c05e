package pipeline

import (
	"errors"
	"testing"

	"github.com/automoto/skyraid/world"
	"github.com/stretchr/testify/require"
)

func TestRunnerOrdersByLayerThenRegistration(t *testing.T) {
	var ran []string
	step := func(name string, layer Layer) System {
		return System{Name: name, Layer: layer, Run: func(*world.World) error {
			ran = append(ran, name)
			return nil
		}}
	}

	r := NewRunner()
	r.Register(step("cleanup", LayerCleanup), step("input", LayerInput))
	r.Register(step("damage-a", LayerDamage), step("damage-b", LayerDamage))

	want := []string{"input", "damage-a", "damage-b", "cleanup"}
	require.Equal(t, want, r.Order())

	w := world.New(1, nil)
	require.NoError(t, r.Tick(w, 16))
	require.Equal(t, want, ran)
	require.Equal(t, uint64(1), w.Frame())
	require.Equal(t, 16.0, w.Dt())
}

func TestRunnerStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	reached := false

	r := NewRunner()
	r.Register(
		System{Name: "spawn", Layer: LayerSpawn, Run: func(*world.World) error { return boom }},
		System{Name: "render", Layer: LayerRender, Run: func(*world.World) error {
			reached = true
			return nil
		}},
	)

	err := r.Tick(world.New(1, nil), 16)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "spawn")
	require.False(t, reached)
}

func TestLayerString(t *testing.T) {
	require.Equal(t, "boss_phase", LayerBossPhase.String())
	require.Equal(t, "render", LayerRender.String())
	require.Equal(t, "layer(?)", Layer(99).String())
}
