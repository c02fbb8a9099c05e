package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/skyraid/components"
	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/systems"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestSim(t *testing.T, seed uint64, opts Options) *Simulation {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Sim.Seed = seed
	s, err := New(settings, opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func weave(frame int) components.InputSnapshot {
	return components.InputSnapshot{
		Move:   dmath.NewVec2(math.Sin(float64(frame)/40), 0),
		Firing: true,
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestSim(t, 77, Options{})
	b := newTestSim(t, 77, Options{})

	for i := 0; i < 900; i++ {
		sa, err := a.Tick(weave(i), 16)
		require.NoError(t, err)
		sb, err := b.Tick(weave(i), 16)
		require.NoError(t, err)

		sb.RunID = sa.RunID
		require.Equal(t, sa, sb, "frame %d", i)
	}
	require.NotEqual(t, a.RunID(), b.RunID())
}

func TestTickClampsDelta(t *testing.T) {
	s := newTestSim(t, 1, Options{})
	max := config.DefaultSettings().Sim.MaxFrameMs

	snap, err := s.Tick(components.InputSnapshot{}, 10_000)
	require.NoError(t, err)
	require.Equal(t, max, snap.ElapsedMs)

	snap, err = s.Tick(components.InputSnapshot{}, -5)
	require.NoError(t, err)
	require.Equal(t, max, snap.ElapsedMs)

	snap, err = s.Tick(components.InputSnapshot{}, math.NaN())
	require.NoError(t, err)
	require.Equal(t, max, snap.ElapsedMs)
	require.Equal(t, uint64(3), snap.Frame)
}

func TestSnapshotSharesNoMemory(t *testing.T) {
	s := newTestSim(t, 3, Options{})
	var snap Snapshot
	var err error
	for i := 0; i < 60 && len(snap.Sounds) == 0; i++ {
		snap, err = s.Tick(weave(i), 16)
		require.NoError(t, err)
	}
	require.NotEmpty(t, snap.Sounds)
	require.NotEmpty(t, snap.Entities)

	sounds := append([]config.SoundID(nil), snap.Sounds...)
	snap.Sounds[0] = config.SoundNone

	sc, err := s.World().Scalars()
	require.NoError(t, err)
	require.Equal(t, sounds, sc.Audio.PendingSFX)

	p, ok := s.World().Player()
	require.True(t, ok)
	for i := range snap.Entities {
		if snap.Entities[i].ID == p.Entity() {
			snap.Entities[i].X = -9999
		}
	}
	require.NotEqual(t, -9999.0, components.Transform.Get(p).X)
	require.Equal(t, snap.Player.X, components.Transform.Get(p).X)
}

func TestSnapshotDescribesPlayer(t *testing.T) {
	s := newTestSim(t, 1, Options{})
	snap, err := s.Tick(components.InputSnapshot{}, 16)
	require.NoError(t, err)

	require.True(t, snap.Player.Alive)
	require.Equal(t, config.Player.Health, snap.Player.HP)
	require.Equal(t, config.Player.StartWeapon, snap.Player.Weapon)
	require.Equal(t, config.Player.StartingLives, snap.Player.Lives)
	require.Equal(t, config.StatePlaying, snap.State)
	require.Equal(t, 1, snap.Level)
	require.Nil(t, snap.Boss)
	require.Equal(t, s.RunID().String(), snap.RunID)

	kinds := map[EntityKind]int{}
	for _, e := range snap.Entities {
		kinds[e.Kind]++
	}
	require.Equal(t, 1, kinds[KindPlayer])
}

func TestSnapshotCarriesBeamEndpoints(t *testing.T) {
	s := newTestSim(t, 1, Options{})
	factory.CreateBeam(s.World(), 100, 200, 180, 260)

	snap, err := capture(s.World(), "run")
	require.NoError(t, err)

	var beams []EntityView
	for _, e := range snap.Entities {
		if e.Kind == KindBeam {
			beams = append(beams, e)
		}
	}
	require.Len(t, beams, 1)
	b := beams[0]
	require.Equal(t, 140.0, b.X)
	require.Equal(t, 230.0, b.Y)
	require.Equal(t, [4]float64{100, 200, 180, 260}, [4]float64{b.FromX, b.FromY, b.ToX, b.ToY})
}

func TestStoredProgressIsLoaded(t *testing.T) {
	store := &systems.MemoryStore{}
	require.NoError(t, store.SaveMaxLevel(4))

	s := newTestSim(t, 1, Options{Store: store})
	snap, err := s.Tick(components.InputSnapshot{}, 16)
	require.NoError(t, err)
	require.Equal(t, 4, snap.MaxLevel)
	require.Equal(t, 1, snap.Level)
}

type failingStore struct{}

func (failingStore) LoadMaxLevel() (int, error) { return 0, errors.New("disk gone") }
func (failingStore) SaveMaxLevel(int) error     { return errors.New("disk gone") }

func TestUnreadableProgressStartsFresh(t *testing.T) {
	s := newTestSim(t, 1, Options{Store: failingStore{}})
	snap, err := s.Tick(components.InputSnapshot{}, 16)
	require.NoError(t, err)
	require.Zero(t, snap.MaxLevel)
}

func TestToggleAdaptiveDifficulty(t *testing.T) {
	s := newTestSim(t, 1, Options{Formula: func(systems.PerformanceInputs) (float64, error) { return 1, nil }})
	require.NoError(t, s.SetAdaptiveDifficulty(false))

	var snap Snapshot
	var err error
	for i := 0; i < 400; i++ {
		snap, err = s.Tick(components.InputSnapshot{}, 16)
		require.NoError(t, err)
	}
	require.Equal(t, config.DifficultyNormal, snap.Difficulty)

	require.NoError(t, s.SetAdaptiveDifficulty(true))
	for i := 0; i < 400; i++ {
		snap, err = s.Tick(components.InputSnapshot{}, 16)
		require.NoError(t, err)
	}
	require.Equal(t, config.DifficultyEasy, snap.Difficulty)
}

func TestOrderEndsWithSnapshot(t *testing.T) {
	s := newTestSim(t, 1, Options{})
	order := s.Order()
	require.Equal(t, "snapshot", order[len(order)-1])
	require.Less(t, indexOf(order, "damage"), indexOf(order, "combo"))
	require.Less(t, indexOf(order, "collision"), indexOf(order, "damage"))
}

func indexOf(list []string, name string) int {
	for i, s := range list {
		if s == name {
			return i
		}
	}
	return -1
}
