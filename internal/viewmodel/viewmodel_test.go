package viewmodel

import (
	"testing"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

type dict map[string]bool

func (d dict) RandomWord(int) string { return "crane" }
func (d dict) IsValid(w string) bool { return d[w] }

func newGame(t *testing.T) *game.State {
	t.Helper()
	g, err := game.New(dict{"apple": true, "pizza": true, "crane": true}, game.DefaultRules(), "apple")
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return g
}

func findKey(s Snapshot, c string) Key {
	for _, row := range s.Keyboard {
		for _, k := range row {
			if k.Char == c {
				return k
			}
		}
	}
	return Key{}
}

func TestBuild_Dense(t *testing.T) {
	g := newGame(t)
	for _, r := range "pizza" {
		g.EnterCharacter(r)
	}
	g.SubmitAttempt()
	g.EnterCharacter('a')

	s := Build(g)
	if len(s.Board) != 6 {
		t.Fatalf("len(Board) %d, want 6", len(s.Board))
	}
	for i, row := range s.Board {
		if len(row) != 5 {
			t.Fatalf("len(Board[%d]) %d, want 5", i, len(row))
		}
	}
	if tl := s.Board[0][0]; tl == nil || tl.Char != "p" || tl.Mark != game.MarkPresent {
		t.Errorf("Board[0][0] = %+v", tl)
	}
	if tl := s.Board[1][0]; tl == nil || !tl.Active || tl.Mark != "" {
		t.Errorf("Board[1][0] = %+v, want active unmarked tile", tl)
	}
	if s.Board[1][1] != nil || s.Board[5][4] != nil {
		t.Error("untyped cells must be nil")
	}
	if s.Answer != "" {
		t.Errorf("Answer %q leaked while in progress", s.Answer)
	}
	if k := findKey(s, "z"); k.Mark != game.MarkAbsent {
		t.Errorf("key z = %+v, want absent", k)
	}
	if k := findKey(s, "q"); k.Mark != "" {
		t.Errorf("key q = %+v, want unmarked", k)
	}
}

func TestBuild_ResolvedShowsAnswer(t *testing.T) {
	g := newGame(t)
	for _, r := range "apple" {
		g.EnterCharacter(r)
	}
	g.SubmitAttempt()
	s := Build(g)
	if s.Status != game.StatusWon || s.Answer != "apple" {
		t.Errorf("status %q answer %q", s.Status, s.Answer)
	}
	if s.Score != 700 || s.Streak != 1 || s.AttemptsUsed != 1 {
		t.Errorf("score/streak/used %d/%d/%d", s.Score, s.Streak, s.AttemptsUsed)
	}
}

func TestBuild_LossShowsAnswer(t *testing.T) {
	g := newGame(t)
	for i := 0; i < g.TotalAttempts(); i++ {
		for _, r := range "pizza" {
			g.EnterCharacter(r)
		}
		g.SubmitAttempt()
	}
	s := Build(g)
	if s.Status != game.StatusLost || s.Answer != "apple" {
		t.Errorf("status %q answer %q", s.Status, s.Answer)
	}
}

func TestBuild_WinAnswerIsLastRow(t *testing.T) {
	g := newGame(t)
	for _, w := range []string{"pizza", "apple"} {
		for _, r := range w {
			g.EnterCharacter(r)
		}
		g.SubmitAttempt()
	}
	s := Build(g)
	var row string
	for _, tl := range s.Board[1] {
		if tl == nil {
			t.Fatal("completed row has empty cells")
		}
		row += tl.Char
	}
	if s.Answer != row {
		t.Errorf("answer %q, last row %q", s.Answer, row)
	}
}

func TestBuild_Error(t *testing.T) {
	g := newGame(t)
	g.SubmitAttempt()
	if s := Build(g); s.Error != "Not enough letters" {
		t.Errorf("Error %q", s.Error)
	}
}
