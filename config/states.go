package config

// GameStateID is the coarse state of a run exported to the HUD.
type GameStateID int

const (
	StatePlaying GameStateID = iota
	StateBossFight
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateBossFight:
		return "boss_fight"
	case StateGameOver:
		return "game_over"
	default:
		return "playing"
	}
}
