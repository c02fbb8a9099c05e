package scenes

import (
	"image/color"

	cfg "github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RaidScene is the debug viewer: it feeds polled intents to a simulation at the ebiten
// tick rate and draws the snapshot it gets back.
type RaidScene struct {
	settings *cfg.Settings
	opts     sim.Options
	log      *zap.Logger

	sim      *sim.Simulation
	input    inputPoller
	sfx      *sfxPlayer
	snap     sim.Snapshot
	paused   bool
	adaptive bool
	debug    bool
}

func NewRaidScene(settings *cfg.Settings, opts sim.Options) (*RaidScene, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	rs := &RaidScene{
		settings: settings,
		opts:     opts,
		log:      log,
		adaptive: settings.Difficulty.Adaptive,
		sfx:      newSFXPlayer(),
	}
	if err := rs.restart(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (rs *RaidScene) restart() error {
	if rs.sim != nil {
		rs.sim.Close()
	}
	s, err := sim.New(rs.settings, rs.opts)
	if err != nil {
		return err
	}
	rs.sim = s
	rs.snap = sim.Snapshot{}
	rs.paused = false
	if !rs.adaptive {
		return s.SetAdaptiveDifficulty(false)
	}
	return nil
}

func (rs *RaidScene) Update() error {
	rs.input.update()

	if rs.input.justPressed(cfg.ActionPause) {
		rs.paused = !rs.paused
	}
	if rs.input.justPressed(cfg.ActionToggleDifficulty) {
		rs.adaptive = !rs.adaptive
		if err := rs.sim.SetAdaptiveDifficulty(rs.adaptive); err != nil {
			return err
		}
		rs.log.Info("adaptive difficulty toggled", zap.Bool("enabled", rs.adaptive))
	}
	if rs.input.justPressed(cfg.ActionMute) {
		rs.sfx.toggleMute()
	}
	if rs.input.justPressed(cfg.ActionDebug) {
		rs.debug = !rs.debug
	}
	if rs.snap.State == cfg.StateGameOver && rs.input.justPressed(cfg.ActionRestart) {
		return rs.restart()
	}
	if rs.paused {
		return nil
	}

	snap, err := rs.sim.Tick(rs.input.snapshot(), 1000/float64(ebiten.TPS()))
	if err != nil {
		return err
	}
	rs.snap = snap
	rs.sfx.play(snap.Sounds)
	return nil
}

func (rs *RaidScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	drawEntities(screen, rs.snap)
	drawHUD(screen, rs.snap, rs.paused)
	if rs.debug {
		drawDebug(screen, rs.sim, rs.snap)
	}
}

// Close releases the running simulation.
func (rs *RaidScene) Close() {
	if rs.sim != nil {
		rs.sim.Close()
	}
}
