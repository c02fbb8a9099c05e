package sim

import (
	"image/color"
	"sort"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/tags"
	"github.com/automoto/skyraid/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// EntityKind classifies an entity for the renderer.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBoss
	KindBullet
	KindEnemyBullet
	KindPickup
	KindSlowField
	KindBeam
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindPickup:
		return "pickup"
	case KindSlowField:
		return "slow_field"
	case KindBeam:
		return "beam"
	}
	return "unknown"
}

// Snapshot is the read-only view of one tick. It is rebuilt every tick and shares no
// memory with the world.
type Snapshot struct {
	RunID      string
	State      cfg.GameStateID
	Frame      uint64
	ElapsedMs  float64
	Score      int
	Kills      int
	Level      int
	MaxLevel   int
	Difficulty cfg.DifficultyMode

	Player PlayerView
	Combo  ComboView
	Boss   *BossView // nil while no boss is alive

	Entities []EntityView
	Shake    ShakeView
	Sounds   []cfg.SoundID
}

type PlayerView struct {
	Alive       bool
	HP          float64
	MaxHP       float64
	ShieldPct   float64
	Weapon      cfg.WeaponKind
	WeaponLevel int
	Secondary   cfg.WeaponKind
	Synergy     cfg.SynergyKind
	Lives       int
	Bombs       int
	X, Y        float64
}

type ComboView struct {
	Count   int
	Level   int
	TimerMs float64
	Best    int
	Berserk bool
}

type BossView struct {
	ID       donburi.Entity
	Kind     cfg.BossKind
	Phase    int
	HP       float64
	MaxHP    float64
	Entering bool
}

type EntityView struct {
	ID       donburi.Entity
	Kind     EntityKind
	X, Y     float64
	Rotation float64
	HP       float64
	Tint     color.RGBA
	TintA    float32

	// Beam endpoints, set for KindBeam only.
	FromX, FromY, ToX, ToY float64
	// Radius of a slow field.
	Radius float64
}

type ShakeView struct {
	OffsetX, OffsetY float64
	Intensity        float64
}

var visible = query.NewQuery(filter.And(
	filter.Contains(components.Transform),
	filter.Not(filter.Contains(components.Destroy)),
))

func capture(w *world.World, runID string) (Snapshot, error) {
	sc, err := w.Scalars()
	if err != nil {
		return Snapshot{}, err
	}
	game := sc.Game
	s := Snapshot{
		RunID:      runID,
		State:      game.State,
		Frame:      w.Frame(),
		ElapsedMs:  game.ElapsedMs,
		Score:      game.Score,
		Kills:      game.Kills,
		Level:      game.Level,
		MaxLevel:   game.MaxLevelReached,
		Difficulty: sc.Difficulty.Mode,
		Combo: ComboView{
			Count:   sc.Combo.Count,
			Level:   sc.Combo.Level,
			TimerMs: sc.Combo.TimerMs,
			Best:    sc.Combo.Best,
			Berserk: sc.Combo.Level >= len(cfg.Combo.Thresholds),
		},
		Shake: ShakeView{
			OffsetX:   sc.Camera.Offset.X,
			OffsetY:   sc.Camera.Offset.Y,
			Intensity: sc.Camera.ShakeIntensity,
		},
	}
	if len(sc.Audio.PendingSFX) > 0 {
		s.Sounds = append([]cfg.SoundID(nil), sc.Audio.PendingSFX...)
	}

	if p, ok := w.Player(); ok {
		s.Player = playerView(p)
	} else if e, ok := w.PlayerEntity(); ok && w.Valid(e) {
		s.Player = playerView(w.Entry(e))
		s.Player.Alive = false
	}

	visible.Each(w.World, func(e *donburi.Entry) {
		s.Entities = append(s.Entities, entityView(e))
		if s.Boss == nil && e.HasComponent(components.BossTag) && e.HasComponent(components.BossAI) {
			s.Boss = bossView(e)
		}
	})
	sort.Slice(s.Entities, func(i, j int) bool {
		return s.Entities[i].ID < s.Entities[j].ID
	})
	return s, nil
}

func playerView(p *donburi.Entry) PlayerView {
	hp := components.Health.Get(p)
	sh := components.Shield.Get(p)
	pd := components.Player.Get(p)
	t := components.Transform.Get(p)
	weapon := components.Weapon.Get(p)

	v := PlayerView{
		Alive:       true,
		HP:          hp.HP,
		MaxHP:       hp.Max,
		Weapon:      weapon.Kind,
		WeaponLevel: weapon.Level,
		Lives:       pd.Lives,
		Bombs:       pd.Bombs,
		X:           t.X,
		Y:           t.Y,
	}
	if sh.Max > 0 {
		v.ShieldPct = sh.Value / sh.Max
	}
	if p.HasComponent(components.SecondaryWeapon) {
		v.Secondary = components.SecondaryWeapon.Get(p).Kind
	}
	if p.HasComponent(components.Loadout) {
		v.Synergy = components.Loadout.Get(p).Synergy
	}
	return v
}

func bossView(e *donburi.Entry) *BossView {
	hp := components.Health.Get(e)
	return &BossView{
		ID:       e.Entity(),
		Kind:     components.BossTag.Get(e).Kind,
		Phase:    components.BossAI.Get(e).PhaseIndex,
		HP:       hp.HP,
		MaxHP:    hp.Max,
		Entering: e.HasComponent(components.BossEntrance),
	}
}

func entityView(e *donburi.Entry) EntityView {
	t := components.Transform.Get(e)
	v := EntityView{
		ID:       e.Entity(),
		Kind:     kindOf(e),
		X:        t.X,
		Y:        t.Y,
		Rotation: t.Rotation,
	}
	if e.HasComponent(components.Health) {
		v.HP = components.Health.Get(e).HP
	}
	if e.HasComponent(components.Tint) {
		tint := components.Tint.Get(e)
		v.Tint = tint.Color
		v.TintA = tint.Alpha
	}
	if e.HasComponent(components.Beam) {
		b := components.Beam.Get(e)
		v.FromX, v.FromY, v.ToX, v.ToY = b.FromX, b.FromY, b.ToX, b.ToY
	}
	if e.HasComponent(components.SlowField) {
		v.Radius = components.SlowField.Get(e).Radius
	}
	return v
}

func kindOf(e *donburi.Entry) EntityKind {
	switch {
	case e.HasComponent(tags.Player):
		return KindPlayer
	case e.HasComponent(tags.Boss):
		return KindBoss
	case e.HasComponent(tags.Enemy):
		return KindEnemy
	case e.HasComponent(tags.EnemyBullet):
		return KindEnemyBullet
	case e.HasComponent(tags.Bullet):
		return KindBullet
	case e.HasComponent(tags.Pickup):
		return KindPickup
	case e.HasComponent(tags.SlowField):
		return KindSlowField
	case e.HasComponent(tags.Beam):
		return KindBeam
	}
	return KindEnemy
}
