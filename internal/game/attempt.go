// internal/game/attempt.go
//
// A single guess row under construction or completed.

package game

// Attempt is one guess row: the letters typed so far, at most max of them.
type Attempt struct {
	letters []rune
	max     int
}

func newAttempt(max int) Attempt {
	return Attempt{letters: make([]rune, 0, max), max: max}
}

// Append adds r unless the attempt is already full.
func (a *Attempt) Append(r rune) {
	if len(a.letters) >= a.max {
		return
	}
	a.letters = append(a.letters, r)
}

// RemoveLast drops the last letter; no-op when empty.
func (a *Attempt) RemoveLast() {
	if len(a.letters) == 0 {
		return
	}
	a.letters = a.letters[:len(a.letters)-1]
}

// Len returns the number of letters typed.
func (a Attempt) Len() int { return len(a.letters) }

// Full reports whether no more letters fit.
func (a Attempt) Full() bool { return len(a.letters) >= a.max }

// Word joins the letters.
func (a Attempt) Word() string { return string(a.letters) }

// Letters returns a copy of the typed letters.
func (a Attempt) Letters() []rune {
	out := make([]rune, len(a.letters))
	copy(out, a.letters)
	return out
}

// freeze returns an independent copy for the completed list.
func (a Attempt) freeze() Attempt {
	return Attempt{letters: a.Letters(), max: a.max}
}
