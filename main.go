// main.go
//
// HTTP entry point.
//
// Responsibilities:
//   - Load configuration and set the log level.
//   - Load the dictionary once and refuse to start when it has no word of
//     the configured length.
//   - Serve the play API until the listener fails.

package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/config"
	"github.com/robalobadob/wordle/apps/go-solo/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solo/internal/store"
	"github.com/robalobadob/wordle/apps/go-solo/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src := words.SelectSource(cfg.WordsFile, cfg.WordsDB)
	if err := words.Init(context.Background(), src, words.WithPicker(words.NewPicker(cfg.Seed))); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	dict := words.Default()
	if err := dict.Require(cfg.WordLength); err != nil {
		log.Fatal().Err(err).Int("length", cfg.WordLength).Msg("no target words for configured length")
	}
	log.Info().
		Int("words", dict.Stats()).
		Int("candidates", len(dict.WordsOfLength(cfg.WordLength))).
		Int("length", cfg.WordLength).
		Msg("word list loaded")

	srv := httpserver.New(store.NewMemoryStore(cfg.SessionTTL), httpserver.Options{
		Dict:         dict,
		Rules:        cfg.Rules(),
		Secret:       []byte(cfg.SessionSecret),
		TTL:          cfg.SessionTTL,
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting go-solo")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
