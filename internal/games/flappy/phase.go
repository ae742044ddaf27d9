package flappy

// Phase identifies the active screen of the game state machine.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen, waiting for confirm
	PhasePlaying               // Simulation running
	PhasePaused                // Frozen play, resume button shown
	PhaseGameOver              // Round lost, waiting for restart
	PhaseBonus                 // Bonus faller dropping onto the bird
	PhaseCredits               // Credits roll until quit
)

// String returns the screen name used in logs and the platform state.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START_SCREEN"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseBonus:
		return "BONUS_EVENT"
	case PhaseCredits:
		return "CREDITS"
	default:
		return "UNKNOWN"
	}
}
