package engine

import (
	"fmt"
	"rpsls/game"
	"rpsls/player"
)

// PlayRound has the computer pick its move, lets adaptive computers observe
// the human's move, then resolves the round. The computer chooses before it
// observes, so its move only reflects earlier rounds. Scores are left alone.
func PlayRound(human game.Symbol, computer *player.Computer) (game.RoundResult, error) {
	if !human.Valid() {
		return game.RoundResult{}, fmt.Errorf("%w: %d", game.ErrInvalidSymbol, int(human))
	}

	move, err := computer.Choose()
	if err != nil {
		return game.RoundResult{}, err
	}
	if err := computer.Observe(human); err != nil {
		return game.RoundResult{}, err
	}

	return game.Resolve(human, move), nil
}
