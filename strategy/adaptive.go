package strategy

import (
	"fmt"
	"math"
	"rpsls/game"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Option func(a *Adaptive)

// WithTuning overrides the evidence multiplier applied to the observed symbol.
func WithTuning(tuning float64) Option {
	return func(a *Adaptive) {
		a.tuning = tuning
	}
}

// WithBelief starts the opponent from a prior other than uniform.
func WithBelief(belief game.WeightVector) Option {
	return func(a *Adaptive) {
		a.initial = belief
		a.belief = belief
	}
}

// Adaptive predicts the human's next move from a belief over past moves and
// plays the symbol that beats the prediction.
type Adaptive struct {
	sampler    *Sampler
	tuning     float64
	initial    game.WeightVector
	belief     game.WeightVector
	prediction game.Symbol
	predicted  bool
}

func NewAdaptive(sampler *Sampler, options ...Option) *Adaptive {
	if sampler == nil {
		panic("sampler is required")
	}
	a := &Adaptive{ // Default values
		sampler: sampler,
		tuning:  TuningParam,
		initial: InitialBelief(),
		belief:  InitialBelief(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Adaptive) Name() string { return AdaptiveName }

// Choose samples a predicted human move from the current belief and counters it.
func (a *Adaptive) Choose() (game.Symbol, error) {
	predicted, err := a.sampler.Sample(a.belief)
	if err != nil {
		return 0, fmt.Errorf("predict human move: %w", err)
	}
	a.prediction = predicted
	a.predicted = true
	return predicted.Counter(), nil
}

// Observe folds the human's actual move into the belief. On error the belief
// is left as it was.
func (a *Adaptive) Observe(human game.Symbol) error {
	posterior, err := UpdateBelief(a.belief, human, a.tuning)
	if err != nil {
		return fmt.Errorf("update belief: %w", err)
	}
	event := log.Debug().Stringer("observed", human).Floats64("prior", a.belief[:]).Floats64("posterior", posterior[:])
	if predicted, ok := a.LastPrediction(); ok {
		event = event.Stringer("predicted", predicted).Bool("hit", predicted == human)
	}
	event.Msg("belief updated")
	a.belief = posterior
	return nil
}

// Belief returns the current belief over the human's next move.
func (a *Adaptive) Belief() game.WeightVector {
	return a.belief
}

// LastPrediction returns the most recent predicted human move, if any.
func (a *Adaptive) LastPrediction() (game.Symbol, bool) {
	return a.prediction, a.predicted
}

// Reset restores the starting belief.
func (a *Adaptive) Reset() {
	a.belief = a.initial
	a.prediction = 0
	a.predicted = false
}

// UpdateBelief multiplies prior by an evidence vector that is 1 everywhere
// except tuning at observed, normalizes, and rounds each entry to 2 decimals.
// The rounded result is the next prior, so rounding error accumulates.
func UpdateBelief(prior game.WeightVector, observed game.Symbol, tuning float64) (game.WeightVector, error) {
	if !observed.Valid() {
		return prior, fmt.Errorf("%w: %d", game.ErrInvalidSymbol, int(observed))
	}
	if tuning < 0 || math.IsNaN(tuning) || math.IsInf(tuning, 0) {
		return prior, fmt.Errorf("%w: tuning parameter %v", game.ErrInvalidWeightVector, tuning)
	}
	if err := prior.Validate(); err != nil {
		return prior, fmt.Errorf("prior: %w", err)
	}

	var numerator game.WeightVector
	for i, p := range prior {
		evidence := 1.0
		if game.Symbol(i) == observed {
			evidence = tuning
		}
		numerator[i] = p * evidence
	}

	denominator := numerator.Sum()
	if denominator == 0 || math.IsInf(denominator, 0) {
		return prior, fmt.Errorf("%w: posterior mass is %v", game.ErrDegenerateBelief, denominator)
	}

	var posterior game.WeightVector
	for i, n := range numerator {
		posterior[i] = round2(n / denominator)
	}
	return posterior, nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
