package engine

import (
	"context"
	"fmt"
	"rpsls/communication"
	"rpsls/experiments/metrics"
	"rpsls/game"
	"rpsls/gamemaster"
	"rpsls/meta"
	"rpsls/player"

	"github.com/rs/zerolog/log"
)

type Option func(c *Controller)

func WithWinningScore(score int) Option {
	return func(c *Controller) {
		if score > 0 {
			c.winningScore = score
		}
	}
}

// WithMaxRounds ends a match without a winner after the given number of
// rounds. Zero means no limit.
func WithMaxRounds(rounds int) Option {
	return func(c *Controller) {
		if rounds > 0 {
			c.maxRounds = rounds
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *Controller) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithHumanName skips asking the shell for a name.
func WithHumanName(name string) Option {
	return func(c *Controller) {
		c.humanName = name
	}
}

// Opponents builds the computer for the kind of opponent the human asked for.
// *gamemaster.Roster implements it.
type Opponents interface {
	Opponent(kind gamemaster.Kind) (*player.Computer, error)
}

// Controller runs matches between a human, reached through a Shell, and
// computer opponents.
type Controller struct {
	shell        communication.Shell
	opponents    Opponents
	winningScore int
	maxRounds    int
	metrics      metrics.Collector
	humanName    string

	state   State
	human   *player.Player
	match   *Match
	matches []metrics.MatchMetric
}

func NewController(shell communication.Shell, opponents Opponents, options ...Option) *Controller {
	if shell == nil {
		panic("shell is required")
	}
	if opponents == nil {
		panic("opponents are required")
	}
	c := &Controller{ // Default values
		shell:        shell,
		opponents:    opponents,
		winningScore: meta.WINNING_SCORE,
		metrics:      metrics.NewDummyCollector(),
		state:        AwaitingOpponentChoice,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Match returns the current match, or nil before an opponent is chosen.
func (c *Controller) Match() *Match {
	return c.match
}

// Matches returns the metrics of every finished match.
func (c *Controller) Matches() []metrics.MatchMetric {
	return c.matches
}

// Run loops through matches until the human declines a replay, the shell
// fails, or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	name := c.humanName
	if name == "" {
		var err error
		if name, err = c.shell.AskName(); err != nil {
			return fmt.Errorf("ask name: %w", err)
		}
	}
	c.human = player.New(name)

	for c.state != Ended {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch c.state {
		case AwaitingOpponentChoice:
			err = c.chooseOpponent()
		case Playing:
			err = c.playRound()
		case MatchDecided:
			err = c.decide()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", c.state, err)
		}
	}

	c.shell.Goodbye()
	return nil
}

func (c *Controller) chooseOpponent() error {
	c.shell.Welcome(c.winningScore)
	kind, err := c.shell.ChooseOpponent()
	if err != nil {
		return err
	}
	computer, err := c.opponents.Opponent(kind)
	if err != nil {
		return err
	}

	c.match = NewMatch(c.human, computer, c.winningScore)
	c.metrics.Start(computer.Name)
	log.Info().Str("human", c.human.Name).Str("opponent", computer.Name).Str("kind", string(kind)).Msg("match started")

	c.state = Playing
	return nil
}

func (c *Controller) playRound() error {
	move, err := c.shell.ChooseHumanMove(game.Symbols())
	if err != nil {
		return err
	}
	result, err := PlayRound(move, c.match.Computer)
	if err != nil {
		return err
	}
	decided, err := c.match.Record(result)
	if err != nil {
		return err
	}
	c.metrics.AddRound(result)

	log.Debug().Int("round", c.match.Rounds).Stringer("human", result.Human).Stringer("computer", result.Computer).Stringer("winner", result.Winner).Msg("round played")

	c.shell.ReportRound(result, c.match.Names())
	c.shell.ReportScore(c.match.Score())

	switch {
	case decided:
		c.state = MatchDecided
	case c.maxRounds > 0 && c.match.Rounds >= c.maxRounds:
		log.Warn().Int("rounds", c.match.Rounds).Str("opponent", c.match.Computer.Name).Msg("round limit reached without a winner")
		c.state = MatchDecided
	}
	return nil
}

func (c *Controller) decide() error {
	score := c.match.Score()
	c.matches = append(c.matches, c.metrics.Complete(score))

	if winner := c.match.WinnerName(); winner != "" {
		c.shell.ReportMatchWinner(winner)
	}
	log.Info().Str("winner", c.match.WinnerName()).Int("humanPoints", score.HumanPoints).Int("computerPoints", score.ComputerPoints).Int("rounds", score.Rounds).Msg("match finished")

	again, err := c.shell.AskPlayAgain()
	if err != nil {
		return err
	}
	if !again {
		c.state = Ended
		return nil
	}

	c.match.Reset()
	c.state = AwaitingOpponentChoice
	return nil
}
