package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollisions finds overlaps through the resolv grid and an AABB test and turns them
// into Hit, Explosion and Pickup events.
func UpdateCollisions(w *world.World) error {
	for _, e := range collect(w, liveBullets) {
		entry := w.Entry(e)
		if components.Bullet.Get(entry).Faction == cfg.FactionPlayer {
			collidePlayerBullet(w, entry)
		}
	}

	player, ok := w.Player()
	if !ok || !player.HasComponent(components.Object) {
		return nil
	}
	pobj := components.Object.Get(player).Object
	if pobj == nil {
		return nil
	}
	collideEnemyBullets(w, player, pobj)
	collideBodies(w, player, pobj)
	collidePickups(w, player, pobj)
	return nil
}

// overlapping returns the live entities behind the colliders that share a cell with obj
// and whose boxes intersect it.
func overlapping(w *world.World, obj *resolv.Object, tag string) []*donburi.Entry {
	col := obj.Check(0, 0, tag)
	if col == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, o := range col.Objects {
		e, ok := o.Data.(donburi.Entity)
		if !ok {
			continue
		}
		entry, alive := w.Alive(e)
		if !alive || !intersects(obj, o) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func intersects(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func collidePlayerBullet(w *world.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	b := components.Bullet.Get(entry)
	t := components.Transform.Get(entry)

	for _, enemy := range overlapping(w, obj, tags.ResolvEnemy) {
		if _, seen := b.Hits[enemy.Entity()]; seen {
			continue
		}
		if b.Explodes {
			explode(w, entry, b, t.X, t.Y, enemy.Entity())
			w.MarkDestroyed(entry, components.ReasonHit)
			return
		}
		if b.Hits == nil {
			b.Hits = make(map[donburi.Entity]struct{})
		}
		b.Hits[enemy.Entity()] = struct{}{}
		et := components.Transform.Get(enemy)
		events.Emit(w.Events, events.Hit{
			Victim:     enemy.Entity(),
			Source:     b.Owner,
			Damage:     b.Damage,
			Weapon:     b.Weapon,
			Kind:       events.HitDirect,
			X:          et.X,
			Y:          et.Y,
			FromPlayer: true,
		})
		if b.Pierce > 0 {
			b.Pierce--
			continue
		}
		w.MarkDestroyed(entry, components.ReasonHit)
		return
	}
}

// explode publishes an Explosion and area hits on the enemy it struck plus every other
// enemy within the blast radius.
func explode(w *world.World, entry *donburi.Entry, b *components.BulletData, x, y float64, struck donburi.Entity) {
	events.Emit(w.Events, events.Explosion{
		Bullet: entry.Entity(),
		Owner:  b.Owner,
		Weapon: b.Weapon,
		X:      x,
		Y:      y,
		Radius: b.Radius,
		Damage: b.Damage,
	})
	playSound(w, cfg.SoundExplosion)

	targets := []donburi.Entity{struck}
	for _, e := range enemiesWithin(w, x, y, b.Radius) {
		if e != struck {
			targets = append(targets, e)
		}
	}
	for _, e := range targets {
		victim, ok := w.Alive(e)
		if !ok {
			continue
		}
		t := components.Transform.Get(victim)
		events.Emit(w.Events, events.Hit{
			Victim:     e,
			Source:     b.Owner,
			Damage:     b.Damage,
			Weapon:     b.Weapon,
			Kind:       events.HitExplosion,
			X:          t.X,
			Y:          t.Y,
			FromPlayer: b.Faction == cfg.FactionPlayer,
		})
	}
}

func collideEnemyBullets(w *world.World, player *donburi.Entry, pobj *resolv.Object) {
	pt := components.Transform.Get(player)
	for _, bullet := range overlapping(w, pobj, tags.ResolvEnemyBullet) {
		b := components.Bullet.Get(bullet)
		events.Emit(w.Events, events.Hit{
			Victim: player.Entity(),
			Source: b.Owner,
			Damage: b.Damage,
			Weapon: b.Weapon,
			Kind:   events.HitDirect,
			X:      pt.X,
			Y:      pt.Y,
		})
		w.MarkDestroyed(bullet, components.ReasonHit)
	}
}

// collideBodies applies contact damage from enemy bodies. Kamikazes die on contact.
func collideBodies(w *world.World, player *donburi.Entry, pobj *resolv.Object) {
	pd := components.Player.Get(player)
	pt := components.Transform.Get(player)
	for _, enemy := range overlapping(w, pobj, tags.ResolvEnemy) {
		contact := contactDamage(enemy)
		if pd.ContactCooldownMs <= 0 && contact > 0 {
			pd.ContactCooldownMs = cfg.Damage.ContactCooldownMs
			events.Emit(w.Events, events.Hit{
				Victim: player.Entity(),
				Source: enemy.Entity(),
				Damage: contact,
				Kind:   events.HitContact,
				X:      pt.X,
				Y:      pt.Y,
			})
		}
		if enemy.HasComponent(components.Enemy) && components.Enemy.Get(enemy).Behavior == cfg.BehaviorKamikaze {
			et := components.Transform.Get(enemy)
			events.Emit(w.Events, events.Hit{
				Victim: enemy.Entity(),
				Source: player.Entity(),
				Damage: components.Health.Get(enemy).HP,
				Kind:   events.HitContact,
				X:      et.X,
				Y:      et.Y,
			})
		}
	}
}

func contactDamage(enemy *donburi.Entry) float64 {
	if enemy.HasComponent(components.BossTag) {
		if bt, ok := cfg.LookupBoss(components.BossTag.Get(enemy).Kind); ok {
			return bt.Contact
		}
		return 0
	}
	if enemy.HasComponent(components.Enemy) {
		if et, ok := cfg.LookupEnemy(components.Enemy.Get(enemy).Kind); ok {
			return et.Contact
		}
	}
	return 0
}

func collidePickups(w *world.World, player *donburi.Entry, pobj *resolv.Object) {
	for _, pickup := range overlapping(w, pobj, tags.ResolvPickup) {
		t := components.Transform.Get(pickup)
		events.Emit(w.Events, events.Pickup{
			Player: player.Entity(),
			Item:   components.Pickup.Get(pickup).Item,
			X:      t.X,
			Y:      t.Y,
		})
		w.MarkDestroyed(pickup, components.ReasonCollected)
	}
}
