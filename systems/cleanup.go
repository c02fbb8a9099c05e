package systems

import (
	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
)

// UpdateLifetime destroy-tags entities whose lifetime ran out.
func UpdateLifetime(w *world.World) error {
	for _, e := range collect(w, liveLifetimes) {
		entry := w.Entry(e)
		lt := components.Lifetime.Get(entry)
		lt.RemainingMs -= w.Dt()
		if lt.RemainingMs <= 0 {
			w.MarkDestroyed(entry, components.ReasonExpired)
		}
	}
	return nil
}

// UpdateCleanup removes entities whose Destroy tag has been visible for a full pipeline
// pass, taking their colliders out of the broad phase first.
func UpdateCleanup(w *world.World) error {
	frame := w.Frame()
	for _, e := range collect(w, destroyed) {
		entry := w.Entry(e)
		if components.Destroy.Get(entry).Frame >= frame {
			continue
		}
		if entry.HasComponent(components.Object) {
			factory.RemoveObject(components.Object.Get(entry))
		}
		w.Remove(e)
	}
	return nil
}
