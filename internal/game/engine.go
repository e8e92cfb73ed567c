// internal/game/engine.go
//
// Game engine for one player's session.
// Responsibilities:
//   - Pick target words from a Dictionary, one per round.
//   - Edit the active row (enter/remove letters) while the round is open.
//   - Validate and commit attempts (length, dictionary membership).
//   - Derive status (in progress → won/lost) on every read.
//   - Keep score and streak across rounds; a loss resets both.
//
// Notes:
//   - A State is not safe for concurrent use; adapters serialize events.
//   - Validation problems are state (Validation()), never returned errors.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultRows = 6
	defaultCols = 5

	scoreMultiplier = 100
)

// ErrNoWords is returned when the dictionary has no word of the requested length.
var ErrNoWords = errors.New("game: dictionary has no words of that length")

// State is the aggregate root of a play session.
type State struct {
	dict  Dictionary
	rules Rules

	target    string
	targetR   []rune
	completed []Attempt
	active    Attempt

	score      int
	streak     int
	validation Validation
}

// New starts a session on its first round.
// If withTarget is empty, the target is drawn from dict.
func New(dict Dictionary, rules Rules, withTarget string) (*State, error) {
	if dict == nil {
		return nil, errors.New("game: nil dictionary")
	}
	if rules.WordLength < 1 || rules.TotalAttempts < 1 {
		return nil, fmt.Errorf("game: invalid rules %dx%d", rules.TotalAttempts, rules.WordLength)
	}
	switch rules.Scoring {
	case "":
		rules.Scoring = ScoringPositional
	case ScoringPositional, ScoringTwoPass:
	default:
		return nil, fmt.Errorf("game: unknown scoring %q", rules.Scoring)
	}

	target := strings.ToLower(withTarget)
	if target == "" {
		target = dict.RandomWord(rules.WordLength)
		if target == "" {
			return nil, fmt.Errorf("%w: %d", ErrNoWords, rules.WordLength)
		}
	}
	if utf8.RuneCountInString(target) != rules.WordLength {
		return nil, fmt.Errorf("game: target %q is not %d letters", target, rules.WordLength)
	}

	g := &State{dict: dict, rules: rules}
	g.setTarget(target)
	return g, nil
}

func (g *State) setTarget(w string) {
	g.target = w
	g.targetR = []rune(w)
	g.completed = nil
	g.active = newAttempt(g.rules.WordLength)
	g.validation = ValidationNone
}

// ------------------------------ queries ------------------------------------

// Status derives the round state from the completed attempts.
func (g *State) Status() Status {
	if n := len(g.completed); n > 0 && g.completed[n-1].Word() == g.target {
		return StatusWon
	}
	if len(g.completed) >= g.rules.TotalAttempts {
		return StatusLost
	}
	return StatusInProgress
}

func (g *State) Score() int { return g.score }
func (g *State) Streak() int { return g.streak }
func (g *State) Validation() Validation { return g.validation }
func (g *State) Rules() Rules { return g.rules }
func (g *State) WordLength() int { return len(g.targetR) }
func (g *State) TotalAttempts() int { return g.rules.TotalAttempts }
func (g *State) AttemptsUsed() int { return len(g.completed) }
func (g *State) ActiveWord() string { return g.active.Word() }

// Target returns the word being guessed. Adapters should only show it once
// the round is no longer in progress.
func (g *State) Target() string { return g.target }

// LetterAt returns the cell at (row, col). Row len(completed) is the active
// row. ok is false for cells with no letter yet or outside the board.
func (g *State) LetterAt(row, col int) (l Letter, ok bool) {
	a, active, found := g.row(row)
	if !found || col < 0 || col >= a.Len() {
		return Letter{}, false
	}
	marks := g.marks(a, active)
	return Letter{Char: a.letters[col], Mark: marks[col], Active: active}, true
}

// Row returns the typed letters of a row, or nil outside the board.
func (g *State) Row(row int) []Letter {
	a, active, found := g.row(row)
	if !found {
		return nil
	}
	marks := g.marks(a, active)
	out := make([]Letter, a.Len())
	for i, r := range a.letters {
		out[i] = Letter{Char: r, Mark: marks[i], Active: active}
	}
	return out
}

// KeyboardMark returns the most informative mark letter received in any
// completed attempt. ok is false if it was never submitted this round.
func (g *State) KeyboardMark(letter rune) (m Mark, ok bool) {
	letter = unicode.ToLower(letter)
	for _, a := range g.completed {
		marks := g.marks(a, false)
		for i, r := range a.letters {
			if r != letter {
				continue
			}
			ok = true
			if marks[i].rank() > m.rank() {
				m = marks[i]
			}
		}
	}
	return m, ok
}

func (g *State) row(i int) (a Attempt, active bool, ok bool) {
	switch {
	case i < 0:
		return Attempt{}, false, false
	case i < len(g.completed):
		return g.completed[i], false, true
	case i == len(g.completed):
		return g.active, true, true
	}
	return Attempt{}, false, false
}

func (g *State) marks(a Attempt, active bool) []Mark {
	if g.rules.Scoring == ScoringTwoPass && !active {
		return scoreGuess(g.targetR, a.letters)
	}
	return positionalMarks(g.targetR, a.letters)
}

// ----------------------------- mutations -----------------------------------

// EnterCharacter types r into the active row if the round is open and the
// row has room.
func (g *State) EnterCharacter(r rune) {
	g.validation = ValidationNone
	if g.Status() != StatusInProgress {
		return
	}
	g.active.Append(unicode.ToLower(r))
}

// RemoveCharacter deletes the last typed letter if the round is open.
func (g *State) RemoveCharacter() {
	g.validation = ValidationNone
	if g.Status() != StatusInProgress {
		return
	}
	g.active.RemoveLast()
}

// SubmitAttempt validates the active row and, if it passes, commits it.
// Returns the resulting status.
//
// Validation rules:
//   - Row must hold WordLength letters (else ValidationMissingCharacters).
//   - Row must be a dictionary word (else ValidationInvalidWord).
//
// A winning attempt adds 100*(TotalAttempts+1) minus 100 per earlier attempt
// to the score and extends the streak.
func (g *State) SubmitAttempt() Status {
	if g.Status() != StatusInProgress {
		return g.Status()
	}
	if g.active.Len() != g.WordLength() {
		g.validation = ValidationMissingCharacters
		return StatusInProgress
	}
	if !g.dict.IsValid(g.active.Word()) {
		g.validation = ValidationInvalidWord
		return StatusInProgress
	}

	g.validation = ValidationNone
	before := len(g.completed)
	g.completed = append(g.completed, g.active.freeze())
	g.active = newAttempt(g.rules.WordLength)

	st := g.Status()
	if st == StatusWon {
		g.score += scoreMultiplier*(g.rules.TotalAttempts+1) - scoreMultiplier*before
		g.streak++
	}
	return st
}

// StartNextRound clears the board and draws a new target. A lost round
// resets score and streak first.
func (g *State) StartNextRound() {
	if g.Status() == StatusLost {
		g.score = 0
		g.streak = 0
	}
	next := g.dict.RandomWord(g.rules.WordLength)
	if next == "" {
		next = g.target
	}
	g.setTarget(next)
}
