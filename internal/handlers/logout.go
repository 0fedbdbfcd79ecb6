//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string, claims *models.SessionClaims) error
}

// TokenClearer reads and removes the session token in the browser.
type TokenClearer interface {
	Token(r *http.Request) string
	ClearToken(w http.ResponseWriter, r *http.Request) error
}

// NewLogoutHandler ends the current session.
// @Summary Log out
// @Description Ends the session immediately and clears the session cookie.
// @Tags auth
// @Produce html
// @Success 303 "Redirect to / with a flash"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokens TokenClearer, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokens.Token(r)

		if err := svc.Logout(r.Context(), token, middlewares.ClaimsFromContext(r.Context())); err != nil {
			rs.Error(w, r, err, "/")
			return
		}

		if err := tokens.ClearToken(w, r); err != nil {
			logger.Log.Errorw("failed to clear session cookie", "err", err)
		}

		rs.Redirect(w, r, "/", success("You have been logged out."))
	}
}

// RegisterLogoutHandler registers the logout route.
func RegisterLogoutHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/logout", h)
}
