package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// CreateSlowField spawns an area that slows enemies for its lifetime.
func CreateSlowField(w *world.World, x, y, radius, factor, durationMs float64) *donburi.Entry {
	f := archetypes.SlowField.Spawn(w.World)
	components.SlowField.SetValue(f, components.SlowFieldData{Radius: radius, Factor: factor})
	components.Transform.SetValue(f, components.TransformData{X: x, Y: y})
	components.Lifetime.SetValue(f, components.LifetimeData{RemainingMs: durationMs})
	return f
}

// CreateBeam records a chain lightning segment for the renderer. Its transform sits at
// the segment midpoint.
func CreateBeam(w *world.World, fromX, fromY, toX, toY float64) *donburi.Entry {
	b := archetypes.Beam.Spawn(w.World)
	components.Beam.SetValue(b, components.BeamData{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY})
	components.Transform.SetValue(b, components.TransformData{X: (fromX + toX) / 2, Y: (fromY + toY) / 2})
	components.Lifetime.SetValue(b, components.LifetimeData{RemainingMs: cfg.Bullet.BeamLifetimeMs})
	return b
}
