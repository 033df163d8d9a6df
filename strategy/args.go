package strategy

import "rpsls/game"

// Hyperparameters for the adaptive opponent

const TuningParam = 2.0 // Evidence multiplier for the symbol the human just played

const AdaptiveName = "Smarty Pants"

// InitialBelief is the uniform prior over the human's next move.
func InitialBelief() game.WeightVector {
	return game.Uniform()
}
