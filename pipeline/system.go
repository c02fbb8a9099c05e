package pipeline

import "github.com/automoto/skyraid/world"

// Layer defines execution ordering within a single tick.
type Layer int

const (
	LayerInput        Layer = iota // translate intents
	LayerDifficulty                // adaptive difficulty evaluation
	LayerSpawn                     // spawn budget, boss arrival
	LayerBossPhase                 // phase transitions
	LayerBossAction                // boss movement and combat
	LayerEnemyAI                   // enemy steering
	LayerTimers                    // buffs, regen, tints
	LayerSynergy                   // loadout synergy recompute
	LayerWeapon                    // firing
	LayerMovement                  // integration
	LayerCollision                 // overlap tests, Hit events
	LayerPickup                    // pickup effects
	LayerDamage                    // shield, health, death
	LayerLoot                      // drop rolls
	LayerCombo                     // streak and score
	LayerProgression               // levels, lives, persistence
	LayerPresentation              // camera shake, audio queue
	LayerCleanup                   // lifetime expiry, removal
	LayerRender                    // snapshot export
)

var layerNames = [...]string{
	"input", "difficulty", "spawn", "boss_phase", "boss_action", "enemy_ai", "timers",
	"synergy", "weapon", "movement", "collision", "pickup", "damage", "loot", "combo",
	"progression", "presentation", "cleanup", "render",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "layer(?)"
	}
	return layerNames[l]
}

// System is one step of the frame pipeline. Run must not retain component pointers
// past its return.
type System struct {
	Name  string
	Layer Layer
	Run   func(w *world.World) error
}
