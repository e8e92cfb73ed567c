package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/store"
	"github.com/robalobadob/wordle/apps/go-solo/internal/viewmodel"
)

// testDict always picks "apple" and accepts a handful of words.
type testDict struct{}

func (testDict) RandomWord(int) string { return "apple" }
func (testDict) IsValid(w string) bool {
	switch w {
	case "apple", "pizza", "exile", "bunks", "skunk", "whack", "munch":
		return true
	}
	return false
}

func newTestServer() *Server {
	return New(store.NewMemoryStore(time.Hour), Options{
		Dict:   testDict{},
		Rules:  game.DefaultRules(),
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	})
}

func do(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeSnap(t *testing.T, w *httptest.ResponseRecorder) viewmodel.Snapshot {
	t.Helper()
	var s viewmodel.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("decode snapshot: %v (%s)", err, w.Body.String())
	}
	return s
}

func startSession(t *testing.T, srv *Server) (string, viewmodel.Snapshot) {
	t.Helper()
	w := do(t, srv, "POST", "/session", "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /session: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if c := w.Result().Cookies(); len(c) == 0 || c[0].Name != sessionCookieName {
		t.Fatalf("expected %s cookie, got %v", sessionCookieName, c)
	}
	var res sessionRes
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}
	return res.Token, res.State
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(), "GET", "/health", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type %q", ct)
	}
}

func TestNewSession(t *testing.T) {
	_, snap := startSession(t, newTestServer())
	if snap.Status != game.StatusInProgress {
		t.Errorf("status %q", snap.Status)
	}
	if len(snap.Board) != 6 || len(snap.Board[0]) != 5 {
		t.Errorf("board %dx%d", len(snap.Board), len(snap.Board[0]))
	}
	if snap.Answer != "" {
		t.Error("answer must be hidden")
	}
}

func TestRequiresSession(t *testing.T) {
	srv := newTestServer()
	if w := do(t, srv, "GET", "/state", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d", w.Code)
	}
	if w := do(t, srv, "GET", "/state", "garbage", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: got %d", w.Code)
	}

	other := New(store.NewMemoryStore(time.Hour), Options{Dict: testDict{}, Rules: game.DefaultRules(), Secret: []byte("other")})
	tok, _ := startSession(t, other)
	if w := do(t, srv, "GET", "/state", tok, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("foreign token: got %d", w.Code)
	}
}

func TestIdleSessionExpires(t *testing.T) {
	srv := New(store.NewMemoryStore(time.Millisecond), Options{
		Dict:   testDict{},
		Rules:  game.DefaultRules(),
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	})
	tok, _ := startSession(t, srv)
	time.Sleep(5 * time.Millisecond)

	w := do(t, srv, "GET", "/state", tok, "")
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "no_session") {
		t.Errorf("idle session: got %d %s", w.Code, w.Body.String())
	}
}

func TestKeyFlow(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)

	for _, k := range []string{"p", "i", "z", "z", "x", "backspace", "a"} {
		if w := do(t, srv, "POST", "/key", tok, `{"key":"`+k+`"}`); w.Code != http.StatusOK {
			t.Fatalf("key %q: %d %s", k, w.Code, w.Body.String())
		}
	}
	w := do(t, srv, "POST", "/key", tok, `{"key":"enter"}`)
	snap := decodeSnap(t, w)
	if snap.AttemptsUsed != 1 {
		t.Fatalf("attemptsUsed %d, want 1 (error %q)", snap.AttemptsUsed, snap.Error)
	}
	if tl := snap.Board[0][0]; tl == nil || tl.Char != "p" || tl.Mark != game.MarkPresent {
		t.Errorf("Board[0][0] = %+v", tl)
	}

	if w := do(t, srv, "POST", "/key", tok, `{"key":"shift"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad key: got %d", w.Code)
	}
	if w := do(t, srv, "POST", "/key", tok, `{`); w.Code != http.StatusBadRequest {
		t.Errorf("bad json: got %d", w.Code)
	}
}

func TestGuessValidation(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)

	snap := decodeSnap(t, do(t, srv, "POST", "/guess", tok, `{"word":"app"}`))
	if snap.Error != game.ValidationMissingCharacters.Message() || snap.AttemptsUsed != 0 {
		t.Errorf("short guess: error %q used %d", snap.Error, snap.AttemptsUsed)
	}
	snap = decodeSnap(t, do(t, srv, "POST", "/guess", tok, `{"word":"zzzzz"}`))
	if snap.Error != game.ValidationInvalidWord.Message() || snap.AttemptsUsed != 0 {
		t.Errorf("unknown word: error %q used %d", snap.Error, snap.AttemptsUsed)
	}
}

func TestGuessOverlong(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)

	snap := decodeSnap(t, do(t, srv, "POST", "/guess", tok, `{"word":"applesauce"}`))
	if snap.Status != game.StatusInProgress {
		t.Fatalf("status %q, want in progress", snap.Status)
	}
	if snap.AttemptsUsed != 0 || snap.Score != 0 {
		t.Errorf("used/score %d/%d, want 0/0", snap.AttemptsUsed, snap.Score)
	}
	if snap.Error != game.ValidationMissingCharacters.Message() {
		t.Errorf("error %q, want %q", snap.Error, game.ValidationMissingCharacters.Message())
	}
	for _, tl := range snap.Board[0] {
		if tl != nil {
			t.Fatalf("active row should be empty, got %+v", snap.Board[0])
		}
	}
}

func TestGuessNonLetters(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)

	for _, body := range []string{`{"word":"app1e"}`, `{"word":"ap-le"}`, `{"word":""}`} {
		w := do(t, srv, "POST", "/guess", tok, body)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "bad_word") {
			t.Errorf("%s: got %d %s", body, w.Code, w.Body.String())
		}
	}
	snap := decodeSnap(t, do(t, srv, "GET", "/state", tok, ""))
	if snap.AttemptsUsed != 0 {
		t.Errorf("attemptsUsed %d, want 0", snap.AttemptsUsed)
	}
}

func TestWinThenNext(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)

	snap := decodeSnap(t, do(t, srv, "POST", "/guess", tok, `{"word":"APPLE"}`))
	if snap.Status != game.StatusWon || snap.Score != 700 || snap.Streak != 1 {
		t.Fatalf("after win: %+v", snap)
	}
	if snap.Answer != "apple" {
		t.Errorf("answer %q, want apple", snap.Answer)
	}

	snap = decodeSnap(t, do(t, srv, "POST", "/next", tok, ""))
	if snap.Status != game.StatusInProgress || snap.AttemptsUsed != 0 || snap.Score != 700 {
		t.Errorf("after next: %+v", snap)
	}
}

func TestLoseResetsOnNext(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)
	do(t, srv, "POST", "/guess", tok, `{"word":"apple"}`)
	do(t, srv, "POST", "/next", tok, "")

	var snap viewmodel.Snapshot
	for _, w := range []string{"pizza", "exile", "bunks", "skunk", "whack", "munch"} {
		snap = decodeSnap(t, do(t, srv, "POST", "/guess", tok, `{"word":"`+w+`"}`))
	}
	if snap.Status != game.StatusLost {
		t.Fatalf("status %q, want lost", snap.Status)
	}
	snap = decodeSnap(t, do(t, srv, "POST", "/next", tok, ""))
	if snap.Score != 0 || snap.Streak != 0 {
		t.Errorf("after loss: score/streak %d/%d", snap.Score, snap.Streak)
	}
}

func TestCookieSession(t *testing.T) {
	srv := newTestServer()
	w := do(t, srv, "POST", "/session", "", "")
	cookie := w.Result().Cookies()[0]

	req := httptest.NewRequest("GET", "/state", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("cookie auth: got %d", rec.Code)
	}
}

func TestEndSession(t *testing.T) {
	srv := newTestServer()
	tok, _ := startSession(t, srv)
	if w := do(t, srv, "DELETE", "/session", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("DELETE /session: %d", w.Code)
	}
	if w := do(t, srv, "GET", "/state", tok, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("after delete: got %d", w.Code)
	}
}

func TestNotFound(t *testing.T) {
	w := do(t, newTestServer(), "GET", "/nope", "", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "not_found") {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}
