package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// NewHomeHandler renders the landing page.
// @Summary Home page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func NewHomeHandler(rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.Page(w, r, http.StatusOK, views.PageHome, views.PageData{})
	}
}

// NewNotFoundHandler renders the generic not-found page for unknown routes.
func NewNotFoundHandler(rs *Responder) http.HandlerFunc {
	return rs.NotFound
}

// RegisterHomeHandler registers the landing page route.
func RegisterHomeHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/", h)
}
