package strategy

import (
	"fmt"
	"rpsls/game"
)

// Static samples every move from the same fixed weights.
type Static struct {
	name    string
	weights game.WeightVector
	sampler *Sampler
}

func NewStatic(name string, weights game.WeightVector, sampler *Sampler) (*Static, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("static profile %q: %w", name, err)
	}
	if sampler == nil {
		panic("sampler is required")
	}
	return &Static{name: name, weights: weights, sampler: sampler}, nil
}

func (s *Static) Name() string { return s.name }

func (s *Static) Choose() (game.Symbol, error) {
	return s.sampler.Sample(s.weights)
}

// Profile names a fixed weight vector for a static opponent.
type Profile struct {
	Name    string
	Weights game.WeightVector
}

// New builds a Static opponent for the profile.
func (p Profile) New(sampler *Sampler) (*Static, error) {
	return NewStatic(p.Name, p.Weights, sampler)
}

// Profiles returns the static opponents, in roster order.
func Profiles() []Profile {
	return []Profile{
		{Name: "R2D2", Weights: game.MustWeightVector(0.2, 0.2, 0.2, 0.2, 0.2)},
		{Name: "Hal", Weights: game.MustWeightVector(0.8, 0.05, 0.05, 0.05, 0.05)},
		{Name: "Chappie", Weights: game.MustWeightVector(0.01, 0.01, 0.32, 0.32, 0.32)},
		{Name: "Spock", Weights: game.MustWeightVector(0, 0, 1, 0, 0)},
		{Name: "Number 5", Weights: game.MustWeightVector(0.25, 0.25, 0.25, 0.25, 0)},
	}
}
