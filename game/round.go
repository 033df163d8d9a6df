package game

// Winner identifies which side took a round or a match.
type Winner int

const (
	NoWinner Winner = iota
	HumanWinner
	ComputerWinner
)

func (w Winner) String() string {
	switch w {
	case HumanWinner:
		return "human"
	case ComputerWinner:
		return "computer"
	default:
		return "none"
	}
}

// RoundResult is a snapshot of one round: both moves and who won.
type RoundResult struct {
	Human    Symbol
	Computer Symbol
	Winner   Winner
}

func (r RoundResult) IsTie() bool {
	return r.Winner == NoWinner
}

// Resolve applies the dominance rule to a human and a computer move.
func Resolve(human, computer Symbol) RoundResult {
	result := RoundResult{Human: human, Computer: computer}
	switch Beats(human, computer) {
	case FirstWins:
		result.Winner = HumanWinner
	case SecondWins:
		result.Winner = ComputerWinner
	}
	return result
}

// Names carries the display names of both sides.
type Names struct {
	Human    string
	Computer string
}

// Score is a snapshot of a match's scoreboard.
type Score struct {
	Names
	HumanPoints    int
	ComputerPoints int
	WinningScore   int
	Rounds         int
}

// Leader returns the side that has reached the winning score, if any.
func (s Score) Leader() Winner {
	switch {
	case s.HumanPoints >= s.WinningScore:
		return HumanWinner
	case s.ComputerPoints >= s.WinningScore:
		return ComputerWinner
	default:
		return NoWinner
	}
}
