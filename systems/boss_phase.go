package systems

import (
	"math"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateBossPhase moves each boss forward through its phase list as its health drops.
// The phase index never decreases.
func UpdateBossPhase(w *world.World) error {
	for _, e := range collect(w, liveBosses) {
		entry := w.Entry(e)
		kind := components.BossTag.Get(entry).Kind
		bt, ok := cfg.LookupBoss(kind)
		if !ok {
			w.Log.Warn("boss kind missing from table, phase update skipped", zap.Stringer("boss", kind))
			continue
		}
		ai := components.BossAI.Get(entry)
		frac := components.Health.Get(entry).Fraction()
		target := NextPhase(bt.Phases, ai.PhaseIndex, frac)
		for idx := ai.PhaseIndex + 1; idx <= target; idx++ {
			enterPhase(w, entry, bt, idx)
		}
	}
	return nil
}

// NextPhase returns the furthest phase index reachable from current at a health fraction.
func NextPhase(phases []cfg.BossPhaseConfig, current int, frac float64) int {
	next := current
	for next+1 < len(phases) && frac <= phases[next+1].Threshold {
		next++
	}
	return next
}

func enterPhase(w *world.World, entry *donburi.Entry, bt cfg.BossTypeConfig, idx int) {
	phase := bt.Phases[idx]

	ai := components.BossAI.Get(entry)
	ai.PhaseIndex = idx
	ai.PhaseTimerMs = 0
	ai.SummonTimerMs = 0

	wd := components.Weapon.Get(entry)
	wd.RemainingCooldownMs = 0
	if nw, ok := factory.NewWeapon(phase.Weapon, wd.Level); ok {
		wd.Kind = nw.Kind
		wd.CooldownMs = nw.CooldownMs
		wd.Pattern = nw.Pattern
		wd.BulletCount = nw.BulletCount
		wd.Volley = 0
	} else {
		w.Log.Warn("phase weapon missing from table, keeping current weapon",
			zap.Stringer("boss", bt.Kind), zap.Int("phase", idx), zap.Stringer("weapon", phase.Weapon))
	}
	wd.FireRateMultiplier = orOne(phase.FireRate)
	wd.DamageMultiplier = orOne(phase.Damage)

	ss := components.SpeedStat.Get(entry)
	ss.MaxLinear = ss.BaseLinear * orOne(phase.MoveSpeed)
	if phase.Event == cfg.PhaseEventEnrage {
		ss.MaxLinear *= cfg.Boss.EnrageSpeedMult
	}

	if phase.InvulnerableMs > 0 {
		upsert(entry, components.Invulnerable, components.InvulnerableData{RemainingMs: phase.InvulnerableMs})
		upsert(entry, components.Tint, components.TintData{
			Color: phase.Tint,
			Alpha: 1,
			Fade:  gween.New(1, 0, float32(phase.InvulnerableMs/1000), ease.OutQuad),
		})
	}

	switch phase.Event {
	case cfg.PhaseEventScreenClear:
		clearEnemyBullets(w)
		events.Emit(w.Events, events.ScreenClear{Source: entry.Entity()})
	case cfg.PhaseEventSummonWingmen:
		summonWingmen(w, entry.Entity())
	}

	events.Emit(w.Events, events.BossPhaseChange{Boss: entry.Entity(), Kind: bt.Kind, Phase: idx})
	playSound(w, cfg.SoundBossPhase)
	w.Log.Debug("boss phase change", zap.Stringer("boss", bt.Kind), zap.Int("phase", idx))
}

// summonWingmen spawns a wave of escorts spread evenly around the boss.
func summonWingmen(w *world.World, boss donburi.Entity) {
	n := cfg.Boss.WingmenPerWave
	if n <= 0 {
		return
	}
	var mods cfg.DifficultyModifiers
	if sc, err := w.Scalars(); err == nil {
		mods = sc.Difficulty.Mods
	}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		factory.CreateEscort(w, boss, angle, mods)
	}
}
