package factory

import (
	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// CreateGlobals spawns the singleton entity holding run-wide state.
func CreateGlobals(w *world.World, level, maxLevel int, adaptive bool) *donburi.Entry {
	g := archetypes.Globals.Spawn(w.World)

	if level < 1 {
		level = 1
	}
	components.Game.SetValue(g, components.GameData{
		State:           cfg.StatePlaying,
		Level:           level,
		MaxLevelReached: maxLevel,
	})
	components.Combo.SetValue(g, components.ComboData{})
	components.Difficulty.SetValue(g, components.DifficultyData{
		Enabled: adaptive && cfg.Difficulty.Enabled,
		Mode:    cfg.DifficultyNormal,
		Mods:    cfg.ModifiersFor(cfg.DifficultyNormal),
	})
	components.Spawner.SetValue(g, components.SpawnerData{})
	components.Loot.SetValue(g, components.LootData{})
	components.Input.SetValue(g, components.InputData{})
	components.Camera.SetValue(g, components.CameraData{})
	components.Audio.SetValue(g, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, cfg.Audio.MaxPending),
	})
	components.Space.SetValue(g, components.SpaceData{Space: newSpace(cfg.C.Width, cfg.C.Height)})

	w.SetGlobals(g)
	return g
}
