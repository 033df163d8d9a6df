package communication

import (
	"rpsls/game"
	"rpsls/gamemaster"
)

// Shell is the boundary between the game and whoever sits in front of it.
// The core never parses text: it asks the Shell for validated values and hands
// it immutable snapshots to render.
type Shell interface {
	AskName() (string, error)
	Welcome(winningScore int)
	ChooseOpponent() (gamemaster.Kind, error)
	ChooseHumanMove(valid []game.Symbol) (game.Symbol, error)
	ReportRound(result game.RoundResult, names game.Names)
	ReportScore(score game.Score)
	ReportMatchWinner(name string)
	AskPlayAgain() (bool, error)
	Goodbye()
}
