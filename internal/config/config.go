// internal/config/config.go
//
// Runtime settings.
//
// Responsibilities:
//   - Read a .env file when present (development), then the environment.
//   - Validate game rules and server settings before anything starts.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

// Config holds every setting the binaries read.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	WordLength    int    `env:"WORDLE_WORD_LENGTH" envDefault:"5"`
	TotalAttempts int    `env:"WORDLE_ATTEMPTS" envDefault:"6"`
	Scoring       string `env:"WORDLE_SCORING" envDefault:"positional"`
	Seed          int64  `env:"WORDLE_SEED" envDefault:"0"`

	// WordsDB takes precedence over WordsFile; with neither set the
	// embedded dictionary is used.
	WordsFile string `env:"WORDS_FILE"`
	WordsDB   string `env:"WORDS_DB"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ClientOrigin  string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges env tags cannot express.
func (c Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("WORDLE_WORD_LENGTH must be positive, got %d", c.WordLength)
	}
	if c.TotalAttempts < 1 {
		return fmt.Errorf("WORDLE_ATTEMPTS must be positive, got %d", c.TotalAttempts)
	}
	switch game.Scoring(c.Scoring) {
	case game.ScoringPositional, game.ScoringTwoPass:
	default:
		return fmt.Errorf("WORDLE_SCORING must be %q or %q, got %q", game.ScoringPositional, game.ScoringTwoPass, c.Scoring)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// Rules converts the round settings for the game engine.
func (c Config) Rules() game.Rules {
	return game.Rules{
		WordLength:    c.WordLength,
		TotalAttempts: c.TotalAttempts,
		Scoring:       game.Scoring(c.Scoring),
	}
}
