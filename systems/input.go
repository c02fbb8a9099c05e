package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// UpdateInput translates the tick's InputSnapshot into player velocity, fire triggers
// and bombs. The snapshot is written into the Input singleton by the caller.
func UpdateInput(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	if sc.Game.State == cfg.StateGameOver {
		return nil
	}
	player, ok := w.Player()
	if !ok {
		return nil
	}
	in := sc.Input.Current

	mx, my := in.Move.X, in.Move.Y
	if l := math.Hypot(mx, my); l > 1 {
		mx, my = mx/l, my/l
	}
	speed := EffectiveMaxSpeed(player)
	vel := components.Velocity.Get(player)
	vel.VX = mx * speed
	vel.VY = my * speed

	// Pointer drag moves the ship directly.
	if in.PointerDelta.X != 0 || in.PointerDelta.Y != 0 {
		t := components.Transform.Get(player)
		t.X = clamp(t.X+in.PointerDelta.X, cfg.Player.Width/2, cfg.C.Width-cfg.Player.Width/2)
		t.Y = clamp(t.Y+in.PointerDelta.Y, cfg.Player.Height/2, cfg.C.Height-cfg.Player.Height/2)
	}

	pd := components.Player.Get(player)
	pd.Firing = in.Firing
	components.Weapon.Get(player).Trigger = in.Firing
	components.Weapon.Get(player).Aim = math.Pi
	if player.HasComponent(components.SecondaryWeapon) {
		sw := components.SecondaryWeapon.Get(player)
		sw.Trigger = in.Firing
		sw.Aim = math.Pi
	}

	bomb := in.Bombing && !pd.BombHeld && pd.Bombs > 0
	pd.BombHeld = in.Bombing
	if bomb {
		pd.Bombs--
		detonateBomb(w, player.Entity())
	}
	return nil
}

// detonateBomb clears enemy fire and damages every live enemy.
func detonateBomb(w *world.World, player donburi.Entity) {
	clearEnemyBullets(w)
	events.Emit(w.Events, events.ScreenClear{Source: player})
	playSound(w, cfg.SoundBomb)
	shake(w, cfg.Damage.ShakeMax)

	for _, e := range collect(w, liveEnemies) {
		t := components.Transform.Get(w.Entry(e))
		events.Emit(w.Events, events.Hit{
			Victim:     e,
			Source:     player,
			Damage:     cfg.Player.BombDamage,
			Kind:       events.HitBomb,
			X:          t.X,
			Y:          t.Y,
			FromPlayer: true,
		})
	}
}
