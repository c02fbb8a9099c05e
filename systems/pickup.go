package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
)

// UpdatePickups applies the pickups collected this frame.
func UpdatePickups(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	events.Each(w.Events, func(p events.Pickup) {
		player, ok := w.Alive(p.Player)
		if !ok {
			return
		}
		if kind, isWeapon := p.Item.Weapon(); isWeapon {
			if Equip(w, player, kind) {
				playSound(w, cfg.SoundPowerUp)
			}
			return
		}
		switch p.Item {
		case cfg.ItemHealth:
			h := components.Health.Get(player)
			h.HP += cfg.Player.HealAmount
			h.Clamp()
		case cfg.ItemShield:
			components.Shield.Get(player).Restore(cfg.Player.ShieldAmount)
		case cfg.ItemBomb:
			pd := components.Player.Get(player)
			if pd.Bombs < cfg.Player.MaxBombs {
				pd.Bombs++
			}
		case cfg.ItemGem:
			sc.Game.Score += cfg.Player.GemScore
		default:
			return
		}
		playSound(w, cfg.SoundPickup)
	})
	return nil
}
