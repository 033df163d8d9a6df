package player

import (
	"errors"
	"rpsls/game"
	"rpsls/strategy"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingStrategy struct{}

func (failingStrategy) Name() string { return "broken" }

func (failingStrategy) Choose() (game.Symbol, error) {
	return 0, errors.New("boom")
}

func TestPlayerPoints(t *testing.T) {
	p := New("Ada")
	require.Equal(t, "Ada", p.Name)
	require.Zero(t, p.Points)

	p.AddPoint()
	p.AddPoint()
	require.Equal(t, 2, p.Points)

	p.ResetPoints()
	require.Zero(t, p.Points)
}

func TestComputer(t *testing.T) {
	t.Run("choosing from a static strategy", func(t *testing.T) {
		s, err := strategy.NewStatic("Spock", game.MustWeightVector(0, 0, 1, 0, 0), strategy.NewSampler(1))
		require.NoError(t, err)
		c := NewComputer(s)

		move, err := c.Choose()
		require.NoError(t, err)
		require.Equal(t, game.Spock, move)
		require.Equal(t, game.Spock, c.Move, "Choose should record the move")
		require.Equal(t, "Spock", c.Name)
		require.NoError(t, c.Observe(game.Rock), "Static computers should ignore observations")
	})

	t.Run("forwarding observations to adaptive strategies", func(t *testing.T) {
		a := strategy.NewAdaptive(strategy.NewSampler(2))
		c := NewComputer(a)
		require.NoError(t, c.Observe(game.Paper))
		require.Equal(t, game.WeightVector{0.17, 0.17, 0.17, 0.17, 0.33}, a.Belief())
	})

	t.Run("resetting points and belief", func(t *testing.T) {
		a := strategy.NewAdaptive(strategy.NewSampler(3))
		c := NewComputer(a)
		require.NoError(t, c.Observe(game.Rock))
		c.AddPoint()

		c.Reset()
		require.Zero(t, c.Points)
		require.Equal(t, strategy.InitialBelief(), a.Belief())
	})

	t.Run("resetting a static computer keeps its weights", func(t *testing.T) {
		s, err := strategy.NewStatic("Spock", game.MustWeightVector(0, 0, 1, 0, 0), strategy.NewSampler(4))
		require.NoError(t, err)
		c := NewComputer(s)
		c.AddPoint()

		c.Reset()
		require.Zero(t, c.Points)
		move, err := c.Choose()
		require.NoError(t, err)
		require.Equal(t, game.Spock, move)
	})

	t.Run("wrapping strategy errors", func(t *testing.T) {
		c := NewComputer(failingStrategy{})
		_, err := c.Choose()
		require.ErrorContains(t, err, "broken failed to choose")
	})

	t.Run("panics without a strategy", func(t *testing.T) {
		require.Panics(t, func() {
			NewComputer(nil)
		})
	})
}
