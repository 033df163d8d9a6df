package engine

import (
	"io"
	"rpsls/game"
	"rpsls/gamemaster"
)

// scriptedShell plays the human side from fixed scripts and records every report.
type scriptedShell struct {
	name  string
	kinds []gamemaster.Kind
	move  func(round int) game.Symbol
	again []bool

	moveCalls int
	welcomed  int
	goodbyes  int
	results   []game.RoundResult
	scores    []game.Score
	winners   []string
}

func (s *scriptedShell) AskName() (string, error) {
	if s.name == "" {
		return "", io.EOF
	}
	return s.name, nil
}

func (s *scriptedShell) Welcome(winningScore int) { s.welcomed++ }

func (s *scriptedShell) ChooseOpponent() (gamemaster.Kind, error) {
	if len(s.kinds) == 0 {
		return "", io.EOF
	}
	kind := s.kinds[0]
	s.kinds = s.kinds[1:]
	return kind, nil
}

func (s *scriptedShell) ChooseHumanMove(valid []game.Symbol) (game.Symbol, error) {
	if s.move == nil {
		return 0, io.EOF
	}
	move := s.move(s.moveCalls)
	s.moveCalls++
	return move, nil
}

func (s *scriptedShell) ReportRound(result game.RoundResult, names game.Names) {
	s.results = append(s.results, result)
}

func (s *scriptedShell) ReportScore(score game.Score) {
	s.scores = append(s.scores, score)
}

func (s *scriptedShell) ReportMatchWinner(name string) {
	s.winners = append(s.winners, name)
}

func (s *scriptedShell) AskPlayAgain() (bool, error) {
	if len(s.again) == 0 {
		return false, io.EOF
	}
	again := s.again[0]
	s.again = s.again[1:]
	return again, nil
}

func (s *scriptedShell) Goodbye() { s.goodbyes++ }

func always(symbol game.Symbol) func(int) game.Symbol {
	return func(int) game.Symbol { return symbol }
}
