// Package sessionstore carries the session token and one-shot flash messages
// between requests in signed browser cookies.
package sessionstore

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// Cookie names
const (
	SessionCookie = "library-session"
	FlashCookie   = "library-flash"
)

const tokenKey = "token"

func init() {
	gob.Register(models.Flash{})
}

// Store wraps two gorilla cookie stores: a persistent one for the token and a
// browser-session one for flashes.
type Store struct {
	tokens  *sessions.CookieStore
	flashes *sessions.CookieStore
}

// New creates a Store signed with secret. maxAge is the token cookie lifetime in seconds.
func New(secret string, maxAge int, secure bool) *Store {
	tokens := sessions.NewCookieStore([]byte(secret))
	tokens.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	flashes := sessions.NewCookieStore([]byte(secret))
	flashes.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{tokens: tokens, flashes: flashes}
}

// get returns the named session. A cookie that fails to decode (tampered, or
// signed with a rotated secret) yields a fresh empty session.
func get(store *sessions.CookieStore, r *http.Request, name string) *sessions.Session {
	session, err := store.Get(r, name)
	if err != nil {
		logger.Log.Debugw("discarding undecodable cookie", "cookie", name, "err", err)
	}
	return session
}

// Token returns the session token carried by the request, or "".
func (s *Store) Token(r *http.Request) string {
	token, _ := get(s.tokens, r, SessionCookie).Values[tokenKey].(string)
	return token
}

// SetToken stores token in the session cookie.
func (s *Store) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	session := get(s.tokens, r, SessionCookie)
	session.Values[tokenKey] = token
	session.Options.MaxAge = s.tokens.Options.MaxAge
	return session.Save(r, w)
}

// ClearToken expires the session cookie.
func (s *Store) ClearToken(w http.ResponseWriter, r *http.Request) error {
	session := get(s.tokens, r, SessionCookie)
	delete(session.Values, tokenKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// AddFlash queues a message for the next rendered page.
func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error {
	session := get(s.flashes, r, FlashCookie)
	session.AddFlash(flash)
	return session.Save(r, w)
}

// Flashes returns the queued messages and clears them.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) ([]models.Flash, error) {
	session := get(s.flashes, r, FlashCookie)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]models.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(models.Flash); ok {
			out = append(out, f)
		}
	}
	if err := session.Save(r, w); err != nil {
		return nil, err
	}
	return out, nil
}
