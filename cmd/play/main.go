// cmd/play/main.go
//
// Terminal entry point: same configuration and dictionary as the server,
// one local game driven from stdin.

// Command play is a line-oriented terminal front end for the game.
//
// Input, one command per line:
//
//	letters   type them into the active row
//	-         delete the last letter (repeat: "---")
//	. or ""   submit the active row
//	!next     start the next round once this one is over
//	!quit     exit
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/config"
	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

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

	if err := words.Default().Require(cfg.WordLength); err != nil {
		log.Fatal().Err(err).Int("length", cfg.WordLength).Msg("no target words for configured length")
	}

	g, err := game.New(words.Default(), cfg.Rules(), "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	if err := run(g, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("terminal")
	}
}
