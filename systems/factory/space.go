package factory

import (
	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/world"
	"github.com/solarlune/resolv"
)

const spaceCell = 32

func newSpace(width, height float64) *resolv.Space {
	return resolv.NewSpace(int(width), int(height), spaceCell, spaceCell)
}

// newObject creates a collider centred on x, y and registers it in the broad phase.
func newObject(w *world.World, x, y, width, height float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, tag)
	if sc, err := w.Scalars(); err == nil {
		sc.Space.Add(obj)
	}
	return obj
}

// RemoveObject takes a collider out of the broad phase.
func RemoveObject(obj *components.ObjectData) {
	if obj == nil || obj.Object == nil {
		return
	}
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
