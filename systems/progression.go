package systems

import (
	"github.com/automoto/skyraid/components"
	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/events"
	"github.com/automoto/skyraid/systems/factory"
	"github.com/automoto/skyraid/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Progression advances levels on boss kills, persists the highest level reached and
// handles player lives.
type Progression struct {
	store ProgressStore
}

// NewProgression creates the system. A nil store disables persistence.
func NewProgression(store ProgressStore) *Progression {
	return &Progression{store: store}
}

func (p *Progression) Update(w *world.World) error {
	sc, err := w.Scalars()
	if err != nil {
		return err
	}
	var respawnErr error
	events.Each(w.Events, func(k events.Kill) {
		switch {
		case k.IsBoss:
			p.levelUp(w, sc)
		case k.IsPlayer:
			if err := respawn(w, sc, k); err != nil && respawnErr == nil {
				respawnErr = err
			}
		}
	})
	return respawnErr
}

func (p *Progression) levelUp(w *world.World, sc *world.Scalars) {
	game := sc.Game
	game.Level++
	game.LevelElapsedMs = 0
	game.BossActive = false
	if game.State == cfg.StateBossFight {
		game.State = cfg.StatePlaying
	}
	sc.Spawner.BossSpawn = false

	first := game.Level > game.MaxLevelReached
	if first {
		game.MaxLevelReached = game.Level
		if p.store != nil {
			if err := p.store.SaveMaxLevel(game.Level); err != nil {
				w.Log.Warn("could not save progress", zap.Int("level", game.Level), zap.Error(err))
			}
		}
	}
	events.Emit(w.Events, events.LevelUp{Level: game.Level, New: first})
	playSound(w, cfg.SoundLevelUp)
	w.Log.Info("level up", zap.Int("level", game.Level), zap.Bool("new", first))
}

// respawn spends a life and creates a fresh ship, or ends the run.
func respawn(w *world.World, sc *world.Scalars, k events.Kill) error {
	old := w.Entry(k.Victim)
	lives, bombs := 0, cfg.Player.StartingBombs
	if old.Valid() && old.HasComponent(components.Player) {
		pd := components.Player.Get(old)
		lives, bombs = pd.Lives-1, pd.Bombs
	}
	if bombs < cfg.Player.StartingBombs {
		bombs = cfg.Player.StartingBombs
	}

	if lives <= 0 {
		sc.Game.State = cfg.StateGameOver
		events.Emit(w.Events, events.GameOver{Score: sc.Game.Score, Level: sc.Game.Level})
		w.Log.Info("game over", zap.Int("score", sc.Game.Score), zap.Int("level", sc.Game.Level))
		return nil
	}

	player, err := factory.CreatePlayer(w)
	if err != nil {
		return err
	}
	pd := components.Player.Get(player)
	pd.Lives = lives
	pd.Bombs = bombs
	upsert(player, components.Invulnerable, components.InvulnerableData{RemainingMs: cfg.Player.RespawnInvulnMs})
	upsert(player, components.Tint, components.TintData{
		Color: cfg.White,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(cfg.Player.RespawnInvulnMs/1000), ease.Linear),
	})
	events.Emit(w.Events, events.PlayerRespawn{Player: player.Entity(), Lives: lives})
	return nil
}
