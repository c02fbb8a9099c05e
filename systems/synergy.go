package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
)

// ActiveSynergy returns the synergy whose weapon pair is contained in the equipped set.
func ActiveSynergy(primary, secondary cfg.WeaponKind) (cfg.SynergyConfig, bool) {
	if primary == cfg.WeaponNone || secondary == cfg.WeaponNone || primary == secondary {
		return cfg.SynergyConfig{}, false
	}
	return cfg.SynergyFor(primary, secondary)
}

// TriggerContext describes the gameplay moment a synergy may react to. Roll is a uniform
// sample in [0, 1) compared against the trigger chance.
type TriggerContext struct {
	Weapon  cfg.WeaponKind
	Trigger cfg.TriggerKind
	Roll    float64
}

// Effect is the data result of a triggered synergy. The caller applies it.
type Effect struct {
	Synergy    cfg.SynergyKind
	Kind       cfg.EffectKind
	Value      float64
	DurationMs float64
	Radius     float64
	Targets    int
}

// TryTrigger returns the effects of the active synergy for a context, if any.
func TryTrigger(active cfg.SynergyKind, ctx TriggerContext) []Effect {
	if active == cfg.SynergyNone {
		return nil
	}
	s, ok := cfg.LookupSynergy(active)
	if !ok || s.Trigger != ctx.Trigger {
		return nil
	}
	if s.Source != cfg.WeaponNone && s.Source != ctx.Weapon {
		return nil
	}
	if s.Source == cfg.WeaponNone && ctx.Weapon != s.Weapons[0] && ctx.Weapon != s.Weapons[1] {
		return nil
	}
	if s.Chance < 1 && ctx.Roll >= s.Chance {
		return nil
	}
	return []Effect{{
		Synergy:    s.Kind,
		Kind:       s.Effect,
		Value:      s.Value,
		DurationMs: s.DurationMs,
		Radius:     s.Radius,
		Targets:    s.Targets,
	}}
}

// UpdateSynergy recomputes the active synergy when the player's loadout changed.
func UpdateSynergy(w *world.World) error {
	p, ok := w.Player()
	if !ok {
		return nil
	}
	RefreshLoadout(w, p)
	return nil
}

// RefreshLoadout updates the cached loadout and active synergy of the player.
func RefreshLoadout(w *world.World, p *donburi.Entry) {
	primary := components.Weapon.Get(p).Kind
	secondary := cfg.WeaponNone
	if p.HasComponent(components.SecondaryWeapon) {
		secondary = components.SecondaryWeapon.Get(p).Kind
	}
	lo := components.Loadout.Get(p)
	if lo.Primary == primary && lo.Secondary == secondary {
		return
	}
	lo.Primary, lo.Secondary = primary, secondary
	lo.Synergy = cfg.SynergyNone
	if s, ok := ActiveSynergy(primary, secondary); ok {
		lo.Synergy = s.Kind
	}
	events.Emit(w.Events, events.WeaponEquipped{
		Primary:   primary,
		Secondary: secondary,
		Level:     components.Weapon.Get(p).Level,
		Synergy:   lo.Synergy,
	})
}

// Equip applies a weapon pickup to the player.
//
// Picking up the primary kind levels it up. A kind that forms a synergy with the primary
// pushes the old primary to the secondary slot, then the pair is ordered so the synergy's
// main weapon is primary. Any other kind replaces the loadout at level 1.
func Equip(w *world.World, p *donburi.Entry, kind cfg.WeaponKind) bool {
	if !kind.PlayerWeapon() {
		return false
	}
	primary := components.Weapon.Get(p)

	if primary.Kind == kind {
		levelUp(primary)
		RefreshLoadout(w, p)
		return true
	}
	if p.HasComponent(components.SecondaryWeapon) {
		if sw := components.SecondaryWeapon.Get(p); sw.Kind == kind {
			levelUp(sw)
			RefreshLoadout(w, p)
			return true
		}
	}

	next, ok := factory.NewWeapon(kind, 1)
	if !ok {
		return false
	}
	next.Trigger = primary.Trigger
	next.Aim = primary.Aim

	s, combines := ActiveSynergy(kind, primary.Kind)
	if !combines {
		components.Weapon.SetValue(p, next)
		if p.HasComponent(components.SecondaryWeapon) {
			p.RemoveComponent(components.SecondaryWeapon)
		}
		RefreshLoadout(w, p)
		return true
	}

	old := *primary
	old.RemainingCooldownMs = 0
	newPrimary, newSecondary := next, old
	if s.Main != cfg.WeaponNone && newPrimary.Kind != s.Main {
		newPrimary, newSecondary = newSecondary, newPrimary
	}
	components.Weapon.SetValue(p, newPrimary)
	upsert(p, components.SecondaryWeapon, newSecondary)
	RefreshLoadout(w, p)
	return true
}

func levelUp(wd *components.WeaponData) {
	if wd.Level < cfg.Weapon.MaxLevel {
		wd.Level++
	}
	if wc, ok := cfg.LookupWeapon(wd.Kind); ok {
		wd.BulletCount = factory.BulletCount(wc, wd.Level)
	}
}
