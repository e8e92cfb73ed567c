// cmd/play/terminal.go
//
// Line-oriented terminal adapter.
//
// Responsibilities:
//   - Translate input lines into game events.
//   - Redraw the board, keyboard and status line after every event.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/viewmodel"
)

// run drives g from in until EOF or !quit, redrawing to out after every line.
func run(g *game.State, in io.Reader, out io.Writer) error {
	bw := bufio.NewWriter(out)
	render(bw, viewmodel.Build(g))
	if err := bw.Flush(); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "!quit" {
			break
		}
		apply(g, line)
		render(bw, viewmodel.Build(g))
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// apply translates one input line into game operations.
func apply(g *game.State, line string) {
	switch {
	case line == "!next":
		if g.Status() != game.StatusInProgress {
			g.StartNextRound()
		}
	case line == "" || line == ".":
		g.SubmitAttempt()
	case strings.Trim(line, "-") == "":
		for range line {
			g.RemoveCharacter()
		}
	default:
		for _, r := range line {
			if unicode.IsLetter(r) {
				g.EnterCharacter(r)
			}
		}
	}
}

// render draws the header, board and keyboard.
//
// Tiles: [A] correct, (A) present, ·a· absent, " A " being typed, " _ " empty.
func render(w io.Writer, s viewmodel.Snapshot) {
	fmt.Fprintf(w, "\nStreak: %d | Score: %d\n\n", s.Streak, s.Score)
	for _, row := range s.Board {
		for _, t := range row {
			fmt.Fprint(w, tile(t))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	for i, keys := range s.Keyboard {
		fmt.Fprint(w, strings.Repeat(" ", i))
		for _, k := range keys {
			fmt.Fprint(w, key(k))
		}
		fmt.Fprintln(w)
	}

	switch s.Status {
	case game.StatusWon:
		fmt.Fprintf(w, "\nYou got it: %s. Type !next for another word.\n", strings.ToUpper(s.Answer))
	case game.StatusLost:
		fmt.Fprintf(w, "\nThe word was %s. Type !next to start over.\n", strings.ToUpper(s.Answer))
	default:
		if s.Error != "" {
			fmt.Fprintf(w, "\n%s\n", s.Error)
		}
	}
	fmt.Fprint(w, "> ")
}

func tile(t *viewmodel.Tile) string {
	if t == nil {
		return " _ "
	}
	c := strings.ToUpper(t.Char)
	switch {
	case t.Active:
		return " " + c + " "
	case t.Mark == game.MarkCorrect:
		return "[" + c + "]"
	case t.Mark == game.MarkPresent:
		return "(" + c + ")"
	}
	return "·" + t.Char + "·"
}

func key(k viewmodel.Key) string {
	c := strings.ToUpper(k.Char)
	switch k.Mark {
	case game.MarkCorrect:
		return "[" + c + "]"
	case game.MarkPresent:
		return "(" + c + ")"
	case game.MarkAbsent:
		return " · "
	}
	return " " + c + " "
}
