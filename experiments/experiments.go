package experiments

import (
	"context"
	"fmt"
	"rpsls/engine"
	"rpsls/experiments/metrics"
	"rpsls/gamemaster"
	"rpsls/meta"
	"rpsls/strategy"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	Name     = "simulation"
	NumGames = 30 // Per matchup
	Workers  = 4
)

type Option func(s *Simulation)

func WithGames(games int) Option {
	return func(s *Simulation) {
		if games > 0 {
			s.games = games
		}
	}
}

func WithWorkers(workers int) Option {
	return func(s *Simulation) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithSeed makes the whole batch reproducible. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

func WithWinningScore(score int) Option {
	return func(s *Simulation) {
		if score > 0 {
			s.winningScore = score
		}
	}
}

// WithMaxRounds caps every match. Zero means no cap. Negative values are ignored.
func WithMaxRounds(rounds int) Option {
	return func(s *Simulation) {
		if rounds >= 0 {
			s.maxRounds = rounds
		}
	}
}

func WithTuning(tuning float64) Option {
	return func(s *Simulation) {
		s.tuning = tuning
	}
}

func WithHumans(humans []Human) Option {
	return func(s *Simulation) {
		if len(humans) > 0 {
			s.humans = humans
		}
	}
}

func WithProfiles(profiles []strategy.Profile) Option {
	return func(s *Simulation) {
		if len(profiles) > 0 {
			s.profiles = profiles
		}
	}
}

// Simulation plays every scripted human against every computer opponent.
// Matches are independent and run in parallel, each with its own roster,
// players and samplers.
type Simulation struct {
	games        int
	workers      int
	seed         uint64
	winningScore int
	maxRounds    int
	tuning       float64
	humans       []Human
	profiles     []strategy.Profile
}

func NewSimulation(options ...Option) *Simulation {
	s := &Simulation{ // Default values
		games:        NumGames,
		workers:      Workers,
		winningScore: meta.WINNING_SCORE,
		maxRounds:    meta.MAX_ROUNDS,
		tuning:       strategy.TuningParam,
		humans:       Humans(),
		profiles:     strategy.Profiles(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Report holds everything a simulation produced, in matchup then game order.
type Report struct {
	ID       string
	Matchups []metrics.Matchup
	Matches  []metrics.MatchRecord
	Rounds   []metrics.RoundRecord
}

type task struct {
	matchup metrics.Matchup
	human   Human
	game    int
	seed    uint64
}

// Run plays all matches and returns the collected records.
func (s *Simulation) Run(ctx context.Context) (*Report, error) {
	report := &Report{ID: uuid.NewString()}
	opponents := gamemaster.NewRoster(s.seed, gamemaster.WithProfiles(s.profiles)).Names()

	// Seeds are drawn up front so the outcome does not depend on scheduling
	rng := strategy.NewSampler(s.seed)
	tasks := []task{}
	for _, human := range s.humans {
		for _, opponent := range opponents {
			matchup := metrics.Matchup{ID: len(report.Matchups) + 1, Human: human.Name, Opponent: opponent}
			report.Matchups = append(report.Matchups, matchup)
			for i := 0; i < s.games; i++ {
				tasks = append(tasks, task{matchup: matchup, human: human, game: i + 1, seed: rng.Uint64() | 1})
			}
		}
	}

	log.Info().Str("id", report.ID).Int("matchups", len(report.Matchups)).Int("games", len(tasks)).Int("workers", s.workers).Msgf("starting %s experiment...", Name)

	results := make([]metrics.MatchMetric, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			result, err := s.play(ctx, t)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", t.matchup.ID, t.game, err)
			}
			results[i] = result
			log.Debug().Int("matchup", t.matchup.ID).Int("game", t.game).Stringer("winner", result.Winner).Int("rounds", result.Rounds).Msg("completed game")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, t := range tasks {
		record := metrics.MatchRecord{
			ID:          uuid.NewString(),
			Matchup:     t.matchup.ID,
			Game:        t.game,
			Seed:        t.seed,
			MatchMetric: results[i],
		}
		report.Matches = append(report.Matches, record)
		for _, rm := range results[i].RoundMetrics {
			report.Rounds = append(report.Rounds, metrics.RoundRecord{Match: record.ID, RoundMetric: rm})
		}
	}

	for _, summary := range Summarize(report) {
		log.Info().Str("human", summary.Human).Str("opponent", summary.Opponent).Int("humanWins", summary.HumanWins).Int("computerWins", summary.ComputerWins).Int("undecided", summary.Undecided).Float64("humanWinRate", summary.HumanWinRate()).Float64("meanRounds", summary.MeanRounds).Msg("completed matchup")
	}
	log.Info().Str("id", report.ID).Msgf("completed %s experiment", Name)
	return report, nil
}

// play runs one match between a fresh scripted human and a fresh opponent.
func (s *Simulation) play(ctx context.Context, t task) (metrics.MatchMetric, error) {
	rng := strategy.NewSampler(t.seed)
	human, err := t.human.New(strategy.NewSampler(rng.Uint64() | 1))
	if err != nil {
		return metrics.MatchMetric{}, err
	}
	roster := gamemaster.NewRoster(rng.Uint64()|1,
		gamemaster.WithTuning(s.tuning),
		gamemaster.WithProfiles(s.profiles),
	)
	kind := gamemaster.Silly
	if t.matchup.Opponent == strategy.AdaptiveName {
		kind = gamemaster.Smart
	}

	c := engine.NewController(
		&autoShell{human: human, kind: kind},
		pinned{roster: roster, name: t.matchup.Opponent},
		engine.WithHumanName(human.Name()),
		engine.WithWinningScore(s.winningScore),
		engine.WithMaxRounds(s.maxRounds),
		engine.WithMetrics(metrics.NewCollector()),
	)
	if err := c.Run(ctx); err != nil {
		return metrics.MatchMetric{}, err
	}
	return c.Matches()[0], nil
}

// Write stores the report as CSV files under root and returns their folder.
func Write(report *Report, root string) (string, error) {
	writer, err := metrics.NewWriter(root, Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchups(report.Matchups); err != nil {
		return "", fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	if err := writer.WriteMatchRecords(report.Matches); err != nil {
		return "", fmt.Errorf("failed to write match records: %w", err)
	}
	log.Info().Msg("stored match records")

	if err := writer.WriteRoundRecords(report.Rounds); err != nil {
		return "", fmt.Errorf("failed to write round records: %w", err)
	}
	log.Info().Msg("stored round records")

	return writer.Dir(), nil
}
