package factory

import (
	"fmt"

	"github.com/automoto/skyraid/archetypes"
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w *world.World) (*donburi.Entry, error) {
	weapon, ok := NewWeapon(cfg.Player.StartWeapon, 1)
	if !ok {
		return nil, fmt.Errorf("player start weapon %s: %w", cfg.Player.StartWeapon, cfg.ErrUnknownKind)
	}

	player := archetypes.Player.Spawn(w.World)

	x, y := cfg.Player.SpawnX, cfg.Player.SpawnY
	obj := newObject(w, x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Lives: cfg.Player.StartingLives,
		Bombs: cfg.Player.StartingBombs,
	})
	components.Transform.SetValue(player, components.TransformData{X: x, Y: y})
	components.Health.SetValue(player, components.HealthData{
		HP:  cfg.Player.Health,
		Max: cfg.Player.Health,
	})
	components.Shield.SetValue(player, components.ShieldData{
		Value:        cfg.Player.ShieldStart,
		Max:          cfg.Player.ShieldMax,
		RegenPerSec:  cfg.Player.ShieldRegen,
		RegenDelayMs: cfg.Player.ShieldRegenWait,
	})
	components.Weapon.SetValue(player, weapon)
	components.Loadout.SetValue(player, components.LoadoutData{Primary: weapon.Kind})
	components.SpeedStat.SetValue(player, components.SpeedStatData{
		BaseLinear: cfg.Player.MaxSpeed,
		MaxLinear:  cfg.Player.MaxSpeed,
	})

	w.SetPlayer(player.Entity())
	return player, nil
}
