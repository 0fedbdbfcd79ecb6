//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// DashboardLister lists the books of the session's user.
type DashboardLister interface {
	Dashboard(ctx context.Context, claims *models.SessionClaims) ([]models.BookDB, error)
}

// NewDashboardHandler renders the user's own books.
// @Summary User dashboard
// @Tags books
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 303 "Redirect to /login when not logged in"
// @Router /dashboard [get]
func NewDashboardHandler(svc DashboardLister, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.Dashboard(r.Context(), middlewares.ClaimsFromContext(r.Context()))
		if err != nil {
			rs.Error(w, r, err, "/")
			return
		}
		rs.Page(w, r, http.StatusOK, views.PageDashboard, views.PageData{Books: books})
	}
}

// RegisterDashboardHandler registers the dashboard route.
func RegisterDashboardHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/dashboard", h)
}
