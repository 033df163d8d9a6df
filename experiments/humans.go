package experiments

import (
	"fmt"
	"rpsls/game"
	"rpsls/strategy"
)

// Human describes a scripted human and builds a fresh instance of it per match.
type Human struct {
	Name string
	New  func(sampler *strategy.Sampler) (strategy.Strategy, error)
}

// Humans returns the scripted humans every opponent is played against.
func Humans() []Human {
	return []Human{
		static("Rock Only", game.MustWeightVector(1, 0, 0, 0, 0)),
		static("Random", game.Uniform()),
		static("Paper Lover", game.MustWeightVector(0.1, 0.1, 0.1, 0.1, 0.6)),
		{
			Name: "Cycler",
			New: func(*strategy.Sampler) (strategy.Strategy, error) {
				return NewSequence("Cycler", game.Symbols()...)
			},
		},
	}
}

func static(name string, weights game.WeightVector) Human {
	return Human{
		Name: name,
		New: func(sampler *strategy.Sampler) (strategy.Strategy, error) {
			return strategy.NewStatic(name, weights, sampler)
		},
	}
}

// Sequence plays its moves in order, then starts over.
type Sequence struct {
	name  string
	moves []game.Symbol
	next  int
}

func NewSequence(name string, moves ...game.Symbol) (*Sequence, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("sequence %q has no moves", name)
	}
	for _, m := range moves {
		if !m.Valid() {
			return nil, fmt.Errorf("sequence %q: %w: %d", name, game.ErrInvalidSymbol, int(m))
		}
	}
	return &Sequence{name: name, moves: moves}, nil
}

func (s *Sequence) Name() string { return s.name }

func (s *Sequence) Choose() (game.Symbol, error) {
	move := s.moves[s.next]
	s.next = (s.next + 1) % len(s.moves)
	return move, nil
}
