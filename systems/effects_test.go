package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var beams = query.NewQuery(filter.Contains(components.Beam))

func sureEffect(t *testing.T, synergy cfg.SynergyKind, ctx TriggerContext) Effect {
	t.Helper()
	effs := TryTrigger(synergy, ctx)
	require.Len(t, effs, 1)
	return effs[0]
}

func TestChainLightningJumpsToNearestOthers(t *testing.T) {
	w := newTestWorld(t)
	newTestPlayer(t, w)
	victim := newTestEnemy(t, w, 100, 100, 100)
	west := newTestEnemy(t, w, 60, 100, 100)
	east := newTestEnemy(t, w, 150, 100, 100)
	south := newTestEnemy(t, w, 100, 180, 100)
	newTestEnemy(t, w, 200, 100, 100)
	newTestEnemy(t, w, 300, 300, 100)

	eff := sureEffect(t, cfg.SynergyTesla, TriggerContext{Weapon: cfg.WeaponPlasma, Trigger: cfg.TriggerHit})
	require.Equal(t, cfg.EffectChainLightning, eff.Kind)

	w.BeginFrame(frameMs)
	applyEffect(w, eff, victim.Entity(), true, 100, 100, 0, donburi.Entity(0))

	hits := collectEvents[events.Hit](w)
	require.Len(t, hits, eff.Targets)
	got := make([]donburi.Entity, 0, len(hits))
	for _, h := range hits {
		require.Equal(t, events.HitChain, h.Kind)
		require.Equal(t, eff.Value, h.Damage)
		require.True(t, h.FromPlayer)
		got = append(got, h.Victim)
	}
	require.Equal(t, []donburi.Entity{west.Entity(), east.Entity(), south.Entity()}, got)
	require.Equal(t, eff.Targets, beams.Count(w.World))
}

func TestFirestormBurnsEnemiesInBlast(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	w.BeginFrame(frameMs)
	require.True(t, Equip(w, p, cfg.WeaponMissile))
	require.Equal(t, cfg.SynergyFirestorm, components.Loadout.Get(p).Synergy)

	near := newTestEnemy(t, w, 200, 200, 100)
	edge := newTestEnemy(t, w, 240, 200, 100)
	far := newTestEnemy(t, w, 400, 200, 100)

	w.BeginFrame(frameMs)
	events.Emit(w.Events, events.Explosion{
		Owner: p.Entity(), Weapon: cfg.WeaponMissile, X: 200, Y: 200, Radius: 48, Damage: 22,
	})
	require.NoError(t, UpdateDamage(w))

	fs, ok := cfg.LookupSynergy(cfg.SynergyFirestorm)
	require.True(t, ok)
	for _, e := range []*donburi.Entry{near, edge} {
		require.True(t, e.HasComponent(components.DamageOverTime))
		dot := components.DamageOverTime.Get(e)
		require.Equal(t, fs.Value, dot.DamagePerTick)
		require.Equal(t, fs.DurationMs, dot.RemainingMs)
		require.Equal(t, p.Entity(), dot.Source)
	}
	require.False(t, far.HasComponent(components.DamageOverTime))
}

func TestAegisRestoresShieldWithGrace(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	sh := components.Shield.Get(p)
	sh.Value = 0

	eff := sureEffect(t, cfg.SynergyAegis, TriggerContext{Weapon: cfg.WeaponWave, Trigger: cfg.TriggerBounce})
	require.Equal(t, cfg.EffectShieldRestore, eff.Kind)

	w.BeginFrame(frameMs)
	applyEffect(w, eff, donburi.Entity(0), false, 0, 0, 0, p.Entity())

	require.Equal(t, math.Min(eff.Value, sh.Max), sh.Value)
	require.True(t, p.HasComponent(components.Invulnerable))
	require.Equal(t, eff.DurationMs, components.Invulnerable.Get(p).RemainingMs)

	sh.Value = sh.Max
	applyEffect(w, eff, donburi.Entity(0), false, 0, 0, 0, p.Entity())
	require.Equal(t, sh.Max, sh.Value)
}

func TestOverdriveBoostsPlayerSpeed(t *testing.T) {
	w := newTestWorld(t)
	p := newTestPlayer(t, w)
	base := EffectiveMaxSpeed(p)

	eff := sureEffect(t, cfg.SynergyOverdrive, TriggerContext{Weapon: cfg.WeaponVulcan, Trigger: cfg.TriggerHit})
	require.Equal(t, cfg.EffectSpeedBoost, eff.Kind)

	w.BeginFrame(frameMs)
	applyEffect(w, eff, donburi.Entity(0), false, 0, 0, 0, p.Entity())

	require.True(t, p.HasComponent(components.SpeedModifier))
	sm := components.SpeedModifier.Get(p)
	require.Equal(t, eff.Value, sm.Multiplier)
	require.Equal(t, eff.DurationMs, sm.RemainingMs)
	require.InDelta(t, base*eff.Value, EffectiveMaxSpeed(p), 1e-9)
}

func TestPatternTarget(t *testing.T) {
	bt := cfg.BossTypeConfig{Width: 100, Height: 80, Amplitude: 150}
	ai := func(ms float64) *components.BossAIData {
		return &components.BossAIData{MoveTimerMs: ms, AnchorX: 240, AnchorY: 150}
	}

	tests := []struct {
		name         string
		m            cfg.MovementPattern
		timerMs      float64
		x, y, px, py float64
		wantX, wantY float64
	}{
		{name: "sine at rest", m: cfg.MoveSine, wantX: 240, wantY: 150},
		{name: "sine at peak", m: cfg.MoveSine, timerMs: 1000 * math.Pi / 1.6, wantX: 390, wantY: 150},
		{name: "figure8 at rest", m: cfg.MoveFigure8, wantX: 240, wantY: 150},
		{name: "circular", m: cfg.MoveCircular, wantX: 330, wantY: 150},
		{name: "zigzag", m: cfg.MoveZigzag, wantX: 390, wantY: 170},
		{name: "tracking", m: cfg.MoveTracking, px: 100, py: 600, wantX: 100, wantY: 150},
		{name: "tracking clamps to canvas", m: cfg.MoveTracking, px: 0, py: 600, wantX: 50, wantY: 150},
		{name: "teleport first slot", m: cfg.MoveTeleport, wantX: 240, wantY: 180},
		{name: "teleport holds its slot", m: cfg.MoveTeleport, timerMs: cfg.Boss.TeleportEveryMs - 1, wantX: 240, wantY: 180},
		{
			name: "teleport next slot", m: cfg.MoveTeleport, timerMs: cfg.Boss.TeleportEveryMs,
			wantX: 240 + 150*math.Sin(2.39996), wantY: 150 + 30*math.Cos(1.7),
		},
		{name: "adaptive dodges when close", m: cfg.MoveAdaptive, x: 240, y: 150, px: 300, py: 250, wantX: 165, wantY: 150},
		{name: "adaptive dodges right of a player on the left", m: cfg.MoveAdaptive, x: 240, y: 150, px: 200, py: 250, wantX: 315, wantY: 150},
		{name: "adaptive tracks when far", m: cfg.MoveAdaptive, x: 240, y: 150, px: 400, py: 600, wantX: 400, wantY: 150},
		{name: "slow descent bottoms out", m: cfg.MoveSlowDescent, timerMs: 100000, wantX: 240 + 75*math.Sin(50), wantY: 310},
		{name: "aggressive", m: cfg.MoveAggressive, wantX: 240, wantY: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PatternTarget(tt.m, ai(tt.timerMs), bt, tt.x, tt.y, tt.px, tt.py)
			require.InDelta(t, tt.wantX, x, 1e-6)
			require.InDelta(t, tt.wantY, y, 1e-6)
		})
	}
}
