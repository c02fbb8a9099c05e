package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }
type pong struct{ n int }

func TestEachVisitsCurrentFrameInOrder(t *testing.T) {
	b := NewBus()
	b.Advance(1)
	Emit(b, ping{1})
	Emit(b, pong{9})
	Emit(b, ping{2})

	var got []int
	Each(b, func(p ping) { got = append(got, p.n) })
	require.Equal(t, []int{1, 2}, got)
	require.Equal(t, 1, Count[pong](b))
}

func TestEachSeesEventsEmittedByHandlers(t *testing.T) {
	b := NewBus()
	b.Advance(1)
	Emit(b, ping{1})

	visited := 0
	Each(b, func(p ping) {
		visited++
		if p.n < 3 {
			Emit(b, ping{p.n + 1})
		}
	})
	require.Equal(t, 3, visited)
}

func TestAdvanceKeepsOnePreviousFrame(t *testing.T) {
	b := NewBus()
	b.Advance(1)
	Emit(b, ping{1})
	b.Advance(2)
	Emit(b, ping{2})

	require.Equal(t, 1, Count[ping](b))
	require.Equal(t, 2, b.Len())

	b.Advance(3)
	require.Equal(t, 1, b.Len())
	require.Zero(t, Count[ping](b))
}

func TestSinceResumesFromCursor(t *testing.T) {
	b := NewBus()
	b.Advance(1)
	Emit(b, ping{1})
	Emit(b, ping{2})

	var seen []uint64
	cursor := b.Since(0, func(r Record) { seen = append(seen, r.Seq) })
	require.Equal(t, []uint64{1, 2}, seen)
	require.Equal(t, b.LastSeq(), cursor)

	b.Advance(2)
	Emit(b, pong{3})
	seen = seen[:0]
	cursor = b.Since(cursor, func(r Record) {
		seen = append(seen, r.Seq)
		require.Equal(t, uint64(2), r.Frame)
	})
	require.Equal(t, []uint64{3}, seen)
	require.Equal(t, uint64(3), cursor)

	require.Equal(t, cursor, b.Since(cursor, func(Record) { t.Fatal("nothing new") }))
}
