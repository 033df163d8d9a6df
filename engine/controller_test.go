package engine

import (
	"context"
	"io"
	"rpsls/experiments/metrics"
	"rpsls/game"
	"rpsls/gamemaster"
	"rpsls/strategy"
	"testing"

	"github.com/stretchr/testify/require"
)

func spockOnly() gamemaster.Option {
	return gamemaster.WithProfiles([]strategy.Profile{
		{Name: "Spock", Weights: game.MustWeightVector(0, 0, 1, 0, 0)},
	})
}

func TestControllerRun(t *testing.T) {
	t.Run("full match then exit", func(t *testing.T) {
		shell := &scriptedShell{
			name:  "Ada",
			kinds: []gamemaster.Kind{gamemaster.Silly},
			move:  always(game.Paper),
			again: []bool{false},
		}
		c := NewController(shell, gamemaster.NewRoster(1, spockOnly()), WithMetrics(metrics.NewCollector()))

		require.NoError(t, c.Run(context.Background()))
		require.Equal(t, Ended, c.state)
		require.Equal(t, 1, shell.welcomed)
		require.Equal(t, 1, shell.goodbyes)
		require.Len(t, shell.results, 5, "Paper beats Spock every round")
		require.Len(t, shell.scores, 5)
		require.Equal(t, []string{"Ada"}, shell.winners)

		last := shell.scores[len(shell.scores)-1]
		require.Equal(t, 5, last.HumanPoints)
		require.Equal(t, 0, last.ComputerPoints)
		require.Equal(t, game.Names{Human: "Ada", Computer: "Spock"}, last.Names)

		require.Len(t, c.Matches(), 1)
		m := c.Matches()[0]
		require.Equal(t, "Spock", m.Opponent)
		require.Equal(t, game.HumanWinner, m.Winner)
		require.Equal(t, 5, m.Rounds)
	})

	t.Run("replay against a new opponent", func(t *testing.T) {
		shell := &scriptedShell{
			name:  "Ada",
			kinds: []gamemaster.Kind{gamemaster.Silly, gamemaster.Smart},
			move:  always(game.Rock),
			again: []bool{true, false},
		}
		c := NewController(shell, gamemaster.NewRoster(2, spockOnly()), WithMetrics(metrics.NewCollector()))

		require.NoError(t, c.Run(context.Background()))
		require.Len(t, c.Matches(), 2)
		require.Equal(t, "Spock", c.Matches()[0].Opponent)
		require.Equal(t, game.ComputerWinner, c.Matches()[0].Winner, "Spock beats rock")
		require.Equal(t, strategy.AdaptiveName, c.Matches()[1].Opponent)
		require.Len(t, shell.winners, 2)
		require.Equal(t, 2, shell.welcomed, "Every match opens with the welcome")

		// Scores restart with the new match
		second := c.Matches()[1]
		require.Equal(t, second.Rounds, second.HumanPoints+second.ComputerPoints+second.Ties)
		require.True(t, second.HumanPoints == 5 || second.ComputerPoints == 5)
	})

	t.Run("custom winning score", func(t *testing.T) {
		shell := &scriptedShell{
			kinds: []gamemaster.Kind{gamemaster.Silly},
			move:  always(game.Lizard),
			again: []bool{false},
		}
		c := NewController(shell, gamemaster.NewRoster(3, spockOnly()), WithHumanName("Bo"), WithWinningScore(2))

		require.NoError(t, c.Run(context.Background()))
		require.Len(t, shell.results, 2, "Lizard beats Spock")
		require.Equal(t, []string{"Bo"}, shell.winners)
		require.Equal(t, 2, c.Match().WinningScore)
	})

	t.Run("round limit ends a match without a winner", func(t *testing.T) {
		shell := &scriptedShell{
			name:  "Ada",
			kinds: []gamemaster.Kind{gamemaster.Silly},
			move:  always(game.Spock),
			again: []bool{false},
		}
		c := NewController(shell, gamemaster.NewRoster(4, spockOnly()), WithMaxRounds(10), WithMetrics(metrics.NewCollector()))

		require.NoError(t, c.Run(context.Background()))
		require.Empty(t, shell.winners)
		require.Len(t, c.Matches(), 1)
		require.Equal(t, game.NoWinner, c.Matches()[0].Winner)
		require.Equal(t, 10, c.Matches()[0].Ties)
	})

	t.Run("cancelled context", func(t *testing.T) {
		shell := &scriptedShell{name: "Ada", kinds: []gamemaster.Kind{gamemaster.Silly}, move: always(game.Rock)}
		c := NewController(shell, gamemaster.NewRoster(5))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, c.Run(ctx), context.Canceled)
		require.Zero(t, shell.goodbyes)
	})

	t.Run("shell errors propagate", func(t *testing.T) {
		shell := &scriptedShell{name: "Ada", kinds: []gamemaster.Kind{gamemaster.Smart}}
		c := NewController(shell, gamemaster.NewRoster(6))

		err := c.Run(context.Background())
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, Playing, c.state)
	})

	t.Run("missing name", func(t *testing.T) {
		c := NewController(&scriptedShell{}, gamemaster.NewRoster(7))
		require.ErrorIs(t, c.Run(context.Background()), io.EOF)
	})

	t.Run("unknown kind", func(t *testing.T) {
		shell := &scriptedShell{name: "Ada", kinds: []gamemaster.Kind{"clever"}}
		c := NewController(shell, gamemaster.NewRoster(8))
		require.ErrorIs(t, c.Run(context.Background()), gamemaster.ErrUnknownKind)
	})
}

func TestControllerBeliefOnReplay(t *testing.T) {
	play := func(t *testing.T, persist bool) (*gamemaster.Roster, *Controller) {
		shell := &scriptedShell{
			name:  "Ada",
			kinds: []gamemaster.Kind{gamemaster.Smart, gamemaster.Smart},
			move:  always(game.Scissors),
			again: []bool{true, false},
		}
		roster := gamemaster.NewRoster(9, gamemaster.WithPersistBelief(persist))
		c := NewController(shell, roster, WithMetrics(metrics.NewCollector()))
		require.NoError(t, c.Run(context.Background()))
		require.Len(t, c.Matches(), 2)
		return roster, c
	}

	// expected folds n scissors observations into a uniform belief
	expected := func(t *testing.T, n int) game.WeightVector {
		belief := game.Uniform()
		for i := 0; i < n; i++ {
			var err error
			belief, err = strategy.UpdateBelief(belief, game.Scissors, strategy.TuningParam)
			require.NoError(t, err)
		}
		return belief
	}

	t.Run("persisted belief keeps learning", func(t *testing.T) {
		roster, c := play(t, true)
		adaptive, ok := c.Match().Computer.Strategy.(*strategy.Adaptive)
		require.True(t, ok)
		rounds := c.Matches()[0].Rounds + c.Matches()[1].Rounds
		require.Equal(t, expected(t, rounds), adaptive.Belief())

		again, err := roster.Opponent(gamemaster.Smart)
		require.NoError(t, err)
		require.Same(t, c.Match().Computer, again)
		require.Zero(t, again.Points, "Reused opponents start with no points")
		require.Equal(t, expected(t, rounds), adaptive.Belief())
	})

	t.Run("belief reset every match", func(t *testing.T) {
		roster, c := play(t, false)
		adaptive, ok := c.Match().Computer.Strategy.(*strategy.Adaptive)
		require.True(t, ok)
		require.Equal(t, expected(t, c.Matches()[1].Rounds), adaptive.Belief(), "Only the second match should count")

		again, err := roster.Opponent(gamemaster.Smart)
		require.NoError(t, err)
		require.Same(t, c.Match().Computer, again)
		require.Equal(t, game.Uniform(), adaptive.Belief())
		require.Zero(t, again.Points)
	})
}

func TestStateString(t *testing.T) {
	require.Equal(t, "awaiting_opponent_choice", AwaitingOpponentChoice.String())
	require.Equal(t, "playing", Playing.String())
	require.Equal(t, "match_decided", MatchDecided.String())
	require.Equal(t, "ended", Ended.String())
}

func TestNewControllerPanics(t *testing.T) {
	require.Panics(t, func() { NewController(nil, gamemaster.NewRoster(1)) })
	require.Panics(t, func() { NewController(&scriptedShell{}, nil) })
}
