package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the screen shake offset applied by the renderer.
type CameraData struct {
	Offset          math.Vec2
	ShakeIntensity  float64
	ShakeRemainMs   float64
	ShakeDurationMs float64
}

var Camera = donburi.NewComponentType[CameraData]()
