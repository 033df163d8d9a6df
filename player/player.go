package player

import (
	"fmt"
	"rpsls/game"
	"rpsls/strategy"
)

// Player represents one side of a match.
type Player struct {
	Name   string
	Move   game.Symbol
	Points int
}

// New creates a Player with no points.
func New(name string) *Player {
	return &Player{Name: name}
}

func (p *Player) AddPoint() {
	p.Points++
}

func (p *Player) ResetPoints() {
	p.Points = 0
}

// Computer is a player whose moves come from a strategy.
type Computer struct {
	Player
	Strategy strategy.Strategy
}

// NewComputer wraps s in a Player named after it.
func NewComputer(s strategy.Strategy) *Computer {
	if s == nil {
		panic("strategy is required")
	}
	return &Computer{
		Player:   Player{Name: s.Name()},
		Strategy: s,
	}
}

// Choose asks the strategy for this round's move and records it.
func (c *Computer) Choose() (game.Symbol, error) {
	move, err := c.Strategy.Choose()
	if err != nil {
		return 0, fmt.Errorf("%s failed to choose: %w", c.Name, err)
	}
	c.Move = move
	return move, nil
}

// Observe passes the human's move to strategies that learn from it. It is a
// no-op for the others.
func (c *Computer) Observe(human game.Symbol) error {
	observer, ok := c.Strategy.(strategy.Observer)
	if !ok {
		return nil
	}
	if err := observer.Observe(human); err != nil {
		return fmt.Errorf("%s failed to observe %s: %w", c.Name, human, err)
	}
	return nil
}

// Reset clears the points and any state the strategy carries between matches.
func (c *Computer) Reset() {
	c.ResetPoints()
	if resetter, ok := c.Strategy.(strategy.Resetter); ok {
		resetter.Reset()
	}
}
