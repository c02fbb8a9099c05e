package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/events"
	"github.com/cespare/xxhash/v2"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrCorrupt reports a world that no longer holds something every tick relies on.
var ErrCorrupt = errors.New("corrupt world")

// World is the donburi world plus everything a tick shares: the event bus, the frame
// clock, seeded random streams and the logger.
type World struct {
	donburi.World

	Events *events.Bus
	Log    *zap.Logger

	seed    uint64
	streams map[string]*rand.Rand
	frame   uint64
	dtMs    float64
	globals *donburi.Entry

	player    donburi.Entity
	hasPlayer bool
}

// New creates an empty world. A nil logger is replaced by a no-op one.
func New(seed uint64, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		World:   donburi.NewWorld(),
		Events:  events.NewBus(),
		Log:     log,
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// BeginFrame advances the frame counter and the event bus.
func (w *World) BeginFrame(dtMs float64) {
	w.frame++
	w.dtMs = dtMs
	w.Events.Advance(w.frame)
}

// Frame returns the current frame number; the first tick is frame 1.
func (w *World) Frame() uint64 { return w.frame }

// Dt returns the current frame delta in milliseconds.
func (w *World) Dt() float64 { return w.dtMs }

// DtSeconds returns the current frame delta in seconds.
func (w *World) DtSeconds() float64 { return w.dtMs / 1000 }

// Rand returns the random stream for a subsystem. Each stream is seeded from the world
// seed and the stream name, so adding draws to one subsystem never shifts another.
func (w *World) Rand(name string) *rand.Rand {
	if r, ok := w.streams[name]; ok {
		return r
	}
	r := rand.New(rand.NewPCG(w.seed, xxhash.Sum64String(name)))
	w.streams[name] = r
	return r
}

// Alive resolves a weak reference. Entities that were removed or carry Destroy are not alive.
func (w *World) Alive(e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	entry := w.Entry(e)
	if entry.HasComponent(components.Destroy) {
		return nil, false
	}
	return entry, true
}

// MarkDestroyed attaches Destroy once. It reports false if the entity was already marked.
func (w *World) MarkDestroyed(entry *donburi.Entry, reason components.DestroyReason) bool {
	if !entry.Valid() || entry.HasComponent(components.Destroy) {
		return false
	}
	donburi.Add(entry, components.Destroy, &components.DestroyData{
		Reason: reason,
		Frame:  w.frame,
	})
	return true
}

// SetGlobals registers the singleton entity.
func (w *World) SetGlobals(entry *donburi.Entry) {
	w.globals = entry
}

// Globals returns the singleton entity.
func (w *World) Globals() (*donburi.Entry, error) {
	if w.globals == nil || !w.globals.Valid() {
		return nil, fmt.Errorf("globals entity missing: %w", ErrCorrupt)
	}
	return w.globals, nil
}

// SetPlayer registers the player entity.
func (w *World) SetPlayer(e donburi.Entity) {
	w.player = e
	w.hasPlayer = true
}

// Player returns the live player, if any.
func (w *World) Player() (*donburi.Entry, bool) {
	if !w.hasPlayer {
		return nil, false
	}
	return w.Alive(w.player)
}

// PlayerEntity returns the registered player id, alive or not.
func (w *World) PlayerEntity() (donburi.Entity, bool) {
	return w.player, w.hasPlayer
}
