package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

func CreatePickup(w *world.World, item cfg.ItemKind, x, y float64) *donburi.Entry {
	p := archetypes.Pickup.Spawn(w.World)

	obj := newObject(w, x, y, cfg.Loot.PickupSize, cfg.Loot.PickupSize, tags.ResolvPickup)
	obj.Data = p.Entity()
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	components.Pickup.SetValue(p, components.PickupData{Item: item})
	components.Transform.SetValue(p, components.TransformData{X: x, Y: y})
	components.Velocity.SetValue(p, components.VelocityData{VY: cfg.Loot.PickupSpeed})
	components.Lifetime.SetValue(p, components.LifetimeData{RemainingMs: cfg.Loot.PickupLifetimeMs})
	return p
}
