package strategy

import "rpsls/game"

// Strategy picks the computer's move for a round.
type Strategy interface {
	Name() string
	Choose() (game.Symbol, error)
}

// Observer is implemented by strategies that learn from the human's moves.
// Not all strategies observe; use a type assertion to check.
type Observer interface {
	Observe(human game.Symbol) error
}

// Resetter is implemented by strategies with state that can be cleared between matches.
type Resetter interface {
	Reset()
}
