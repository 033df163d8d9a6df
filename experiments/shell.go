package experiments

import (
	"rpsls/game"
	"rpsls/gamemaster"
	"rpsls/player"
	"rpsls/strategy"
)

// pinned hands out the named roster opponent whatever kind is asked for.
type pinned struct {
	roster *gamemaster.Roster
	name   string
}

func (p pinned) Opponent(gamemaster.Kind) (*player.Computer, error) {
	return p.roster.Profile(p.name)
}

// autoShell answers the controller for a scripted human playing one match.
type autoShell struct {
	human strategy.Strategy
	kind  gamemaster.Kind
}

func (s *autoShell) AskName() (string, error)                { return s.human.Name(), nil }
func (s *autoShell) Welcome(winningScore int)                {}
func (s *autoShell) ChooseOpponent() (gamemaster.Kind, error) { return s.kind, nil }

func (s *autoShell) ChooseHumanMove(valid []game.Symbol) (game.Symbol, error) {
	return s.human.Choose()
}

func (s *autoShell) ReportRound(result game.RoundResult, names game.Names) {}
func (s *autoShell) ReportScore(score game.Score)                          {}
func (s *autoShell) ReportMatchWinner(name string)                         {}
func (s *autoShell) AskPlayAgain() (bool, error)                           { return false, nil }
func (s *autoShell) Goodbye()                                              {}
