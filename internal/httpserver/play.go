// internal/httpserver/play.go
//
// Game event handlers.
//
// Responsibilities:
//   - Map POST /key, /guess and /next onto game operations.
//   - Reject malformed input (bad JSON, non-letter keys and words) with 400.
//   - Reply with a fresh snapshot after every event.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

// keyReq is the payload for POST /key: a letter, "backspace" or "enter".
type keyReq struct {
	Key string `json:"key"`
}

// guessReq is the payload for POST /guess.
type guessReq struct {
	Word string `json:"word"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, snapshot(sessionFrom(r.Context())))
}

// handleKey forwards one keyboard event to the game.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	op, ok := keyOp(req.Key)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_key")
		return
	}
	sess := sessionFrom(r.Context())
	sess.Do(op)
	writeJSON(w, http.StatusOK, snapshot(sess))
}

// handleGuess replaces the active row with word and submits it. A word of
// the wrong length is not typed at all, so the submit reports missing
// characters instead of truncating it into a valid guess.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := strings.TrimSpace(req.Word)
	if !isLetters(word) {
		writeError(w, http.StatusBadRequest, "bad_word")
		return
	}
	sess := sessionFrom(r.Context())
	sess.Do(func(g *game.State) {
		for n := utf8.RuneCountInString(g.ActiveWord()); n > 0; n-- {
			g.RemoveCharacter()
		}
		if utf8.RuneCountInString(word) == g.WordLength() {
			for _, c := range word {
				g.EnterCharacter(c)
			}
		}
		g.SubmitAttempt()
	})
	writeJSON(w, http.StatusOK, snapshot(sess))
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sess.Do(func(g *game.State) { g.StartNextRound() })
	writeJSON(w, http.StatusOK, snapshot(sess))
}

// isLetters reports whether s is non-empty and made only of letters.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// keyOp maps a key name to the game operation it triggers.
func keyOp(key string) (func(g *game.State), bool) {
	switch strings.ToLower(key) {
	case "enter", "return":
		return func(g *game.State) { g.SubmitAttempt() }, true
	case "backspace", "delete":
		return func(g *game.State) { g.RemoveCharacter() }, true
	}
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || !unicode.IsLetter(r) {
		return nil, false
	}
	return func(g *game.State) { g.EnterCharacter(r) }, true
}
