//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, previous string, form models.LoginForm) (string, *models.SessionClaims, error)
}

// TokenSetter reads and replaces the session token in the browser.
type TokenSetter interface {
	Token(r *http.Request) string
	SetToken(w http.ResponseWriter, r *http.Request, token string) error
}

// NewLoginPageHandler renders the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /login [get]
func NewLoginPageHandler(rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.Page(w, r, http.StatusOK, views.PageLogin, views.PageData{})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Verifies the credentials and starts a session valid for five days.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Session cookie set, redirect to /dashboard"
// @Failure 303 "Redirect to /login with an error flash"
// @Router /login [post]
func NewLoginHandler(svc Loginer, tokens TokenSetter, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rs.Redirect(w, r, "/login", danger("Could not read the form."))
			return
		}

		form := models.LoginForm{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}

		token, _, err := svc.Login(r.Context(), tokens.Token(r), form)
		if err != nil {
			rs.Error(w, r, err, "/login")
			return
		}

		if err := tokens.SetToken(w, r, token); err != nil {
			logger.Log.Errorw("failed to set session cookie", "err", err)
			rs.Error(w, r, err, "/login")
			return
		}

		rs.Redirect(w, r, "/dashboard", success("Login successful!"))
	}
}

// RegisterLoginHandlers registers the login routes.
func RegisterLoginHandlers(r chi.Router, page, submit http.HandlerFunc) {
	r.Get("/login", page)
	r.Post("/login", submit)
}
