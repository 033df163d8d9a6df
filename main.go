package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"rpsls/communication/console"
	"rpsls/config"
	"rpsls/engine"
	"rpsls/experiments"
	"rpsls/gamemaster"
	"rpsls/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

const (
	playMode     = "play"
	simulateMode = "simulate"
)

type options struct {
	mode string
	config.Config
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", os.Stderr)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	opts, err := parseArgs(os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Init(cfg.LogLevel, os.Stderr)
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	logger.Init(opts.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.mode {
	case playMode:
		err = play(ctx, opts, os.Stdin, os.Stdout)
	case simulateMode:
		err = simulate(ctx, opts)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Str("mode", opts.mode).Msg("run failed")
	}
}

// parseArgs lets flags override the environment configuration.
func parseArgs(args []string, cfg config.Config) (options, error) {
	opts := options{mode: playMode, Config: cfg}

	fs := flag.NewFlagSet("rpsls", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", opts.mode, "play or simulate")
	fs.Uint64Var(&opts.Seed, "seed", opts.Seed, "RNG seed (0 = clock)")
	fs.IntVar(&opts.WinningScore, "score", opts.WinningScore, "points needed to win a match")
	fs.BoolVar(&opts.PersistBelief, "persist-belief", opts.PersistBelief, "keep the smart opponent's belief across replays")
	fs.Float64Var(&opts.TuningParam, "tuning", opts.TuningParam, "smart opponent evidence multiplier")
	fs.IntVar(&opts.Games, "n", opts.Games, "simulated matches per matchup")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "parallel simulated matches")
	fs.IntVar(&opts.MaxRounds, "max-rounds", opts.MaxRounds, "round cap per simulated match (0 = none)")
	fs.StringVar(&opts.OutputDir, "out", opts.OutputDir, "simulation report folder")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.mode != playMode && opts.mode != simulateMode {
		return options{}, fmt.Errorf("unknown mode %q", opts.mode)
	}
	if err := opts.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func play(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	roster := gamemaster.NewRoster(opts.Seed,
		gamemaster.WithPersistBelief(opts.PersistBelief),
		gamemaster.WithTuning(opts.TuningParam),
	)
	shell := console.New(in, out)
	c := engine.NewController(shell, roster, engine.WithWinningScore(opts.WinningScore))
	return c.Run(ctx)
}

func simulate(ctx context.Context, opts options) error {
	s := experiments.NewSimulation(
		experiments.WithGames(opts.Games),
		experiments.WithWorkers(opts.Workers),
		experiments.WithSeed(opts.Seed),
		experiments.WithWinningScore(opts.WinningScore),
		experiments.WithMaxRounds(opts.MaxRounds),
		experiments.WithTuning(opts.TuningParam),
	)
	report, err := s.Run(ctx)
	if err != nil {
		return err
	}
	dir, err := experiments.Write(report, opts.OutputDir)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("simulation reports written")
	return nil
}
