//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, form models.RegisterForm) (*models.UserDB, error)
}

// NewRegisterPageHandler renders the registration form.
// @Summary Registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /register [get]
func NewRegisterPageHandler(rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.Page(w, r, http.StatusOK, views.PageRegister, views.PageData{})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. The password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param confirm_password formData string false "Password confirmation"
// @Success 303 "Redirect to /login with a success flash"
// @Failure 303 "Redirect to /register with an error flash"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rs.Redirect(w, r, "/register", danger("Could not read the form."))
			return
		}

		form := models.RegisterForm{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}
		if _, ok := r.PostForm["confirm_password"]; ok {
			form.ConfirmPassword = r.PostForm.Get("confirm_password")
			form.ConfirmSent = true
		}

		if _, err := svc.Register(r.Context(), form); err != nil {
			rs.Error(w, r, err, "/register")
			return
		}

		rs.Redirect(w, r, "/login", success("Registration successful! You can now log in."))
	}
}

// RegisterRegisterHandlers registers the registration routes.
func RegisterRegisterHandlers(r chi.Router, page, submit http.HandlerFunc) {
	r.Get("/register", page)
	r.Post("/register", submit)
}
