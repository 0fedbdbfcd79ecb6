//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// ProfileManager reads, edits and deletes the session user's own account.
type ProfileManager interface {
	Profile(ctx context.Context, claims *models.SessionClaims) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, claims *models.SessionClaims, form models.ProfileForm) (*models.UserDB, error)
	DeleteAccount(ctx context.Context, claims *models.SessionClaims) error
}

// NewProfileHandler renders the session user's profile.
// @Summary Profile page
// @Description Shows the username and role. The password hash is never rendered.
// @Tags profile
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 303 "Redirect to /login when not logged in"
// @Router /profile [get]
func NewProfileHandler(svc ProfileManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Profile(r.Context(), middlewares.ClaimsFromContext(r.Context()))
		if err != nil {
			rs.Error(w, r, err, "/")
			return
		}
		rs.Page(w, r, http.StatusOK, views.PageProfile, views.PageData{User: user})
	}
}

// NewEditProfileHandler changes the username and/or password.
// @Summary Edit profile
// @Tags profile
// @Accept x-www-form-urlencoded
// @Produce html
// @Param new_username formData string false "New username"
// @Param new_password formData string false "New password"
// @Success 303 "Redirect to /profile with a success flash"
// @Failure 303 "Redirect to /profile with an error flash"
// @Router /edit_profile [post]
func NewEditProfileHandler(svc ProfileManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rs.Redirect(w, r, "/profile", danger("Could not read the form."))
			return
		}

		form := models.ProfileForm{
			NewUsername: r.PostForm.Get("new_username"),
			NewPassword: r.PostForm.Get("new_password"),
		}

		if _, err := svc.UpdateProfile(r.Context(), middlewares.ClaimsFromContext(r.Context()), form); err != nil {
			rs.Error(w, r, err, "/profile")
			return
		}

		rs.Redirect(w, r, "/profile", success("Profile updated successfully"))
	}
}

// NewDeleteAccountHandler deletes the session user's account and books.
// @Summary Delete account
// @Description Deletes the account together with its books and ends every session of the user.
// @Tags profile
// @Produce html
// @Success 303 "Redirect to / with a flash"
// @Router /delete_account [post]
func NewDeleteAccountHandler(svc ProfileManager, tokens TokenClearer, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAccount(r.Context(), middlewares.ClaimsFromContext(r.Context())); err != nil {
			rs.Error(w, r, err, "/profile")
			return
		}

		if err := tokens.ClearToken(w, r); err != nil {
			logger.Log.Errorw("failed to clear session cookie", "err", err)
		}

		rs.Redirect(w, r, "/", success("Account deleted successfully"))
	}
}

// RegisterProfileHandlers registers the profile routes.
func RegisterProfileHandlers(r chi.Router, page, edit, del http.HandlerFunc) {
	r.Get("/profile", page)
	r.Post("/edit_profile", edit)
	r.Post("/delete_account", del)
}
