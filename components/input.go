package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputSnapshot is the normalized intent record produced once per tick by the input
// collaborator. Move has length <= 1; PointerDelta is in playfield pixels.
type InputSnapshot struct {
	Move         math.Vec2
	PointerDelta math.Vec2
	Firing       bool
	Bombing      bool
}

// InputData holds the snapshot for the current tick (singleton component).
type InputData struct {
	Current InputSnapshot
}

var Input = donburi.NewComponentType[InputData]()
