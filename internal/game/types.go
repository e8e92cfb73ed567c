// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter feedback (correct/present/absent).
//   - Letter: a rendered cell of the board.
//   - Status: round state (in progress/won/lost).
//   - Validation: why the last submit was rejected, if it was.
//   - Rules: round dimensions and scoring mode.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target at another position.
//   - "absent":  letter is not in the target at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// rank orders marks by how much they tell the player.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Letter is one board cell. Built on demand from the State; never stored.
type Letter struct {
	Char   rune
	Mark   Mark
	Active bool // true if the cell belongs to the row being typed
}

// Status is the derived state of the current round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Validation records why the last submit was rejected.
// The zero value means no problem.
type Validation string

const (
	ValidationNone              Validation = ""
	ValidationMissingCharacters Validation = "missing_characters"
	ValidationInvalidWord       Validation = "invalid_word"
)

// Message is a short player-facing description.
func (v Validation) Message() string {
	switch v {
	case ValidationMissingCharacters:
		return "Not enough letters"
	case ValidationInvalidWord:
		return "Not in word list"
	}
	return ""
}

// Scoring selects how completed rows are marked.
type Scoring string

const (
	// ScoringPositional marks each letter on its own: correct at its index,
	// else present if the target contains it anywhere. Repeated guess letters
	// can all show present against a single target letter.
	ScoringPositional Scoring = "positional"
	// ScoringTwoPass consumes target letters so repeats are marked at most as
	// many times as they occur in the target.
	ScoringTwoPass Scoring = "two-pass"
)

// Rules fixes the dimensions of every round played on a State.
type Rules struct {
	WordLength    int
	TotalAttempts int
	Scoring       Scoring
}

// DefaultRules returns the classic 6x5 board with positional scoring.
func DefaultRules() Rules {
	return Rules{
		WordLength:    defaultCols,
		TotalAttempts: defaultRows,
		Scoring:       ScoringPositional,
	}
}

// Dictionary is the word source a State draws targets from and validates
// guesses against.
type Dictionary interface {
	RandomWord(length int) string
	IsValid(word string) bool
}
