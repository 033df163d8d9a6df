package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime settings. Environment variables set the defaults
// and command-line flags may override them.
type Config struct {
	WinningScore  int     `env:"RPSLS_WINNING_SCORE" envDefault:"5"`
	PersistBelief bool    `env:"RPSLS_PERSIST_BELIEF" envDefault:"false"`
	TuningParam   float64 `env:"RPSLS_TUNING_PARAM" envDefault:"2"`
	Seed          uint64  `env:"RPSLS_SEED" envDefault:"0"`
	Games         int     `env:"RPSLS_GAMES" envDefault:"30"`
	Workers       int     `env:"RPSLS_WORKERS" envDefault:"4"`
	MaxRounds     int     `env:"RPSLS_MAX_ROUNDS" envDefault:"1000"`
	OutputDir     string  `env:"RPSLS_OUTPUT_DIR" envDefault:"experiments/results"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.WinningScore <= 0:
		return fmt.Errorf("%w: winning score must be positive, got %d", ErrInvalidConfig, c.WinningScore)
	case !(c.TuningParam > 0) || math.IsInf(c.TuningParam, 0):
		return fmt.Errorf("%w: tuning parameter must be a positive number, got %v", ErrInvalidConfig, c.TuningParam)
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.MaxRounds < 0:
		return fmt.Errorf("%w: max rounds must not be negative, got %d", ErrInvalidConfig, c.MaxRounds)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output dir is required", ErrInvalidConfig)
	}
	return nil
}
