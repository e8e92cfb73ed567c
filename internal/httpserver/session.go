// internal/httpserver/session.go
//
// Play sessions over HTTP.
//
// Responsibilities:
//   - Start and end sessions; sweep idle ones on creation.
//   - Sign and verify HS256 session tokens (Bearer header or cookie).
//   - requireSession middleware that puts the *store.Session in the context.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/store"
	"github.com/robalobadob/wordle/apps/go-solo/internal/viewmodel"
)

const sessionCookieName = "wordle_session"

// ctxSessionKey is the context key type for the current *store.Session.
type ctxSessionKey struct{}

type sessionRes struct {
	Token string             `json:"token"`
	State viewmodel.Snapshot `json:"state"`
}

// handleNewSession starts a game, registers it, and hands back a signed token
// (also set as a cookie). Idle sessions are swept first.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	if n := s.store.Expire(r.Context(), time.Now().Add(-s.opts.TTL)); n > 0 {
		log.Info().Int("count", n).Msg("expired idle sessions")
	}

	g, err := game.New(s.opts.Dict, s.opts.Rules, "")
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	sess := store.NewSession(g)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signSession(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Debug().Str("session", sess.ID).Msg("session started")
	writeJSON(w, http.StatusCreated, sessionRes{Token: tok, State: snapshot(sess)})
}

// handleEndSession forgets the session and clears the cookie.
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	_ = s.store.Delete(r.Context(), sess.ID)
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// requireSession resolves the session token and injects the session into the
// request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
		id, err := s.parseSession(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_session")
			return
		}
		sess, err := s.store.Get(r.Context(), id)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error().Err(err).Msg("get session")
			}
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *store.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return sess
}

// ------------------------------ tokens -------------------------------------

// signSession creates an HS256 JWT carrying the session ID.
func (s *Server) signSession(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// parseSession verifies tok and returns the session ID it carries.
func (s *Server) parseSession(tok string) (string, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("session token without subject")
	}
	return claims.Subject, nil
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a token from the Authorization header or session cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
