//go:generate mockgen -source=responder.go -destination=mock_responder.go -package=handlers

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/services"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// Renderer renders an HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data views.PageData) error
}

// Flasher stores one-shot messages between requests.
type Flasher interface {
	AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error
	Flashes(w http.ResponseWriter, r *http.Request) ([]models.Flash, error)
}

// Responder writes pages and redirects, and turns service errors into a flash
// plus a redirect or a generic error page.
type Responder struct {
	views   Renderer
	flashes Flasher
}

// NewResponder creates a new Responder instance.
func NewResponder(views Renderer, flashes Flasher) *Responder {
	return &Responder{views: views, flashes: flashes}
}

// Page renders page with the session claims and pending flashes filled in.
func (rs *Responder) Page(w http.ResponseWriter, r *http.Request, status int, page string, data views.PageData) {
	data.Claims = middlewares.ClaimsFromContext(r.Context())

	flashes, err := rs.flashes.Flashes(w, r)
	if err != nil {
		logger.Log.Errorw("failed to read flashes", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
	}
	data.Flashes = flashes

	if err := rs.views.Render(w, status, page, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Redirect sends a 303 to path after queueing flash.
func (rs *Responder) Redirect(w http.ResponseWriter, r *http.Request, path string, flash models.Flash) {
	if err := rs.flashes.AddFlash(w, r, flash); err != nil {
		logger.Log.Errorw("failed to save flash", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// NotFound renders the generic not-found page.
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.Page(w, r, http.StatusNotFound, views.PageNotFound, views.PageData{})
}

// Error maps err to the user-visible outcome. back is where recoverable
// input errors send the client.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error, back string) {
	var (
		denial  *policy.Denial
		invalid *models.ValidationError
	)

	switch {
	case errors.As(err, &denial):
		logger.Log.Infow("access denied",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"action", denial.Action.String(),
			"reason", denial.Reason.Error(),
		)
		rs.Redirect(w, r, denial.Redirect, denial.Flash())
	case errors.As(err, &invalid):
		rs.Redirect(w, r, back, danger(invalid.Message))
	case errors.Is(err, services.ErrUserAlreadyExists):
		rs.Redirect(w, r, back, danger("Username already exists. Please choose a different one."))
	case errors.Is(err, services.ErrInvalidCredentials):
		rs.Redirect(w, r, back, danger("Invalid username or password."))
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrBookNotFound):
		rs.NotFound(w, r)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"uri", r.RequestURI,
			"err", err,
		)
		rs.Page(w, r, http.StatusInternalServerError, views.PageError, views.PageData{})
	}
}

func success(msg string) models.Flash {
	return models.Flash{Category: models.FlashSuccess, Message: msg}
}

func danger(msg string) models.Flash {
	return models.Flash{Category: models.FlashDanger, Message: msg}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
