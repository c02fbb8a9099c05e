package world

import (
	"fmt"

	"github.com/automoto/skyraid/components"
	"github.com/yohamta/donburi"
)

// Scalars bundles the singleton components every system reads.
type Scalars struct {
	Game       *components.GameData
	Combo      *components.ComboData
	Difficulty *components.DifficultyData
	Spawner    *components.SpawnerData
	Loot       *components.LootData
	Input      *components.InputData
	Camera     *components.CameraData
	Audio      *components.AudioData
	Space      *components.SpaceData
}

var singletons = []donburi.IComponentType{
	components.Game, components.Combo, components.Difficulty, components.Spawner,
	components.Loot, components.Input, components.Camera, components.Audio, components.Space,
}

// Scalars fetches the singleton components. A globals entity without one of them is a
// corrupt world.
func (w *World) Scalars() (*Scalars, error) {
	g, err := w.Globals()
	if err != nil {
		return nil, err
	}
	for i, c := range singletons {
		if !g.HasComponent(c) {
			return nil, fmt.Errorf("globals missing singleton %d: %w", i, ErrCorrupt)
		}
	}
	return &Scalars{
		Game:       components.Game.Get(g),
		Combo:      components.Combo.Get(g),
		Difficulty: components.Difficulty.Get(g),
		Spawner:    components.Spawner.Get(g),
		Loot:       components.Loot.Get(g),
		Input:      components.Input.Get(g),
		Camera:     components.Camera.Get(g),
		Audio:      components.Audio.Get(g),
		Space:      components.Space.Get(g),
	}, nil
}
