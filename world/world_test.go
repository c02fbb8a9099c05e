package world

import (
	"testing"

	"github.com/automoto/skyraid/components"
	"github.com/stretchr/testify/require"
)

func TestAliveRejectsDestroyedAndRemoved(t *testing.T) {
	w := New(1, nil)
	e := w.Create(components.Transform)

	entry, ok := w.Alive(e)
	require.True(t, ok)

	require.True(t, w.MarkDestroyed(entry, components.ReasonExpired))
	require.False(t, w.MarkDestroyed(entry, components.ReasonKilled))
	require.Equal(t, components.ReasonExpired, components.Destroy.Get(entry).Reason)

	_, ok = w.Alive(e)
	require.False(t, ok)

	w.Remove(e)
	_, ok = w.Alive(e)
	require.False(t, ok)
}

func TestRandStreamsAreSeededByName(t *testing.T) {
	a, b := New(7, nil), New(7, nil)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Rand("spawn").Uint64(), b.Rand("spawn").Uint64())
	}
	require.Same(t, a.Rand("loot"), a.Rand("loot"))

	// Draws on one stream leave the others untouched.
	c := New(7, nil)
	c.Rand("spawn").Uint64()
	require.Equal(t, New(7, nil).Rand("loot").Uint64(), c.Rand("loot").Uint64())

	require.NotEqual(t, New(7, nil).Rand("spawn").Uint64(), New(8, nil).Rand("spawn").Uint64())
}

func TestScalarsReportsCorruptWorld(t *testing.T) {
	w := New(1, nil)
	_, err := w.Scalars()
	require.ErrorIs(t, err, ErrCorrupt)

	w.SetGlobals(w.Entry(w.Create(components.Game, components.Combo)))
	_, err = w.Scalars()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestBeginFrameAdvancesClock(t *testing.T) {
	w := New(1, nil)
	w.BeginFrame(20)
	w.BeginFrame(10)
	require.Equal(t, uint64(2), w.Frame())
	require.Equal(t, uint64(2), w.Events.Frame())
	require.InDelta(t, 0.01, w.DtSeconds(), 1e-12)
}

func TestPlayerTracksRegisteredEntity(t *testing.T) {
	w := New(1, nil)
	_, ok := w.Player()
	require.False(t, ok)

	e := w.Create(components.Transform)
	w.SetPlayer(e)
	p, ok := w.Player()
	require.True(t, ok)
	require.Equal(t, e, p.Entity())

	w.MarkDestroyed(p, components.ReasonKilled)
	_, ok = w.Player()
	require.False(t, ok)
	id, ok := w.PlayerEntity()
	require.True(t, ok)
	require.Equal(t, e, id)
}
