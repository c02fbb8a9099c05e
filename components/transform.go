package components

import "github.com/yohamta/donburi"

// TransformData is the centre position of an entity in playfield pixels.
type TransformData struct {
	X, Y     float64
	Rotation float64
}

// VelocityData is expressed per second; Movement scales it by the frame delta.
type VelocityData struct {
	VX, VY float64
	VRot   float64
}

var Transform = donburi.NewComponentType[TransformData]()
var Velocity = donburi.NewComponentType[VelocityData]()
