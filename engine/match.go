package engine

import (
	"errors"
	"rpsls/game"
	"rpsls/player"
)

var ErrMatchDecided = errors.New("match already decided")

// Match keeps score between a human and a computer until one reaches the
// winning score.
type Match struct {
	Human        *player.Player
	Computer     *player.Computer
	WinningScore int
	Rounds       int
	Ties         int
}

func NewMatch(human *player.Player, computer *player.Computer, winningScore int) *Match {
	if human == nil || computer == nil {
		panic("match needs both players")
	}
	if winningScore <= 0 {
		panic("winning score must be positive")
	}
	return &Match{
		Human:        human,
		Computer:     computer,
		WinningScore: winningScore,
	}
}

// Record applies a round result to the score and reports whether the match is
// now decided.
func (m *Match) Record(result game.RoundResult) (bool, error) {
	if m.Decided() {
		return true, ErrMatchDecided
	}

	m.Human.Move = result.Human
	m.Computer.Move = result.Computer
	m.Rounds++
	switch result.Winner {
	case game.HumanWinner:
		m.Human.AddPoint()
	case game.ComputerWinner:
		m.Computer.AddPoint()
	default:
		m.Ties++
	}
	return m.Decided(), nil
}

func (m *Match) Decided() bool {
	return m.Winner() != game.NoWinner
}

// Winner returns the side that reached the winning score, if any.
func (m *Match) Winner() game.Winner {
	return m.Score().Leader()
}

// WinnerName returns the name of the winning side, or "" while undecided.
func (m *Match) WinnerName() string {
	switch m.Winner() {
	case game.HumanWinner:
		return m.Human.Name
	case game.ComputerWinner:
		return m.Computer.Name
	default:
		return ""
	}
}

func (m *Match) Names() game.Names {
	return game.Names{Human: m.Human.Name, Computer: m.Computer.Name}
}

func (m *Match) Score() game.Score {
	return game.Score{
		Names:          m.Names(),
		HumanPoints:    m.Human.Points,
		ComputerPoints: m.Computer.Points,
		WinningScore:   m.WinningScore,
		Rounds:         m.Rounds,
	}
}

// Reset zeroes both scores for a new match.
func (m *Match) Reset() {
	m.Human.ResetPoints()
	m.Computer.ResetPoints()
	m.Rounds = 0
	m.Ties = 0
}
