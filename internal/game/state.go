package game

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateMetaShop
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateMetaShop:
		return "meta_shop"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transitions lists the legal moves. playing -> playing is a restart.
// The workshop is opened from the menu or the game-over screen and
// returns to whichever of the two opened it.
var transitions = map[State][]State{
	StateMenu:     {StatePlaying, StateMetaShop},
	StatePlaying:  {StatePlaying, StatePaused, StateGameOver},
	StatePaused:   {StatePlaying},
	StateMetaShop: {StateMenu, StateGameOver},
	StateGameOver: {StatePlaying, StateMetaShop, StateMenu},
}

// CanTransition reports whether from -> to is legal.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
