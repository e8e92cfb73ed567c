// cmd/wordsdb/main.go
//
// Dictionary import tool for the SQLite word source.

// Command wordsdb imports newline-delimited word lists into a SQLite
// dictionary usable through WORDS_DB.
//
//	wordsdb -db ./data/words.db -in list.txt [-in more.txt]
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/words"
)

type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dsn := flag.String("db", "./data/words.db", "SQLite dictionary path")
	var inputs listFlag
	flag.Var(&inputs, "in", "word list file (repeatable); embedded list if none")
	flag.Parse()

	ctx := context.Background()
	db, err := words.OpenSQLite(ctx, *dsn)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dsn).Msg("open dictionary")
	}
	defer db.Close()

	sources := make([]words.Source, 0, len(inputs))
	for _, p := range inputs {
		sources = append(sources, words.FileSource{Path: p})
	}
	if len(sources) == 0 {
		sources = append(sources, words.EmbeddedSource{})
	}

	total := 0
	for _, src := range sources {
		list, err := src.Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("read word list")
		}
		n, err := words.ImportWords(ctx, db, list)
		if err != nil {
			log.Fatal().Err(err).Msg("import")
		}
		log.Info().Int("read", len(list)).Int("added", n).Msg("imported")
		total += n
	}
	log.Info().Int("added", total).Str("db", *dsn).Msg("done")
}
