package engine

// State is a step of the match state machine.
type State int

const (
	AwaitingOpponentChoice State = iota
	Playing
	MatchDecided
	Ended
)

func (s State) String() string {
	switch s {
	case AwaitingOpponentChoice:
		return "awaiting_opponent_choice"
	case Playing:
		return "playing"
	case MatchDecided:
		return "match_decided"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}
