package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/services"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

func newTestResponder(ctrl *gomock.Controller) (*Responder, *MockRenderer, *MockFlasher) {
	renderer := NewMockRenderer(ctrl)
	flasher := NewMockFlasher(ctrl)
	return NewResponder(renderer, flasher), renderer, flasher
}

// expectFlash expects exactly one flash with the given category and message.
func expectFlash(f *MockFlasher, category, message string) {
	f.EXPECT().AddFlash(gomock.Any(), gomock.Any(), models.Flash{Category: category, Message: message}).Return(nil)
}

// expectPage expects page to be rendered with status; it writes the status like the real renderer.
func expectPage(r *MockRenderer, f *MockFlasher, status int, page string, check func(views.PageData)) {
	f.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(nil, nil)
	r.EXPECT().Render(gomock.Any(), status, page, gomock.Any()).
		DoAndReturn(func(w http.ResponseWriter, status int, _ string, data views.PageData) error {
			if check != nil {
				check(data)
			}
			w.WriteHeader(status)
			return nil
		})
}

func withClaims(req *http.Request, claims *models.SessionClaims) *http.Request {
	if claims == nil {
		return req
	}
	return req.WithContext(middlewares.WithClaims(req.Context(), claims))
}

func TestResponder_Error(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
		wantFlash    string
		wantPage     string
	}{
		{
			name:         "not authenticated",
			err:          policy.Authorize(nil, policy.ActionViewDashboard, nil),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
			wantFlash:    "You need to log in first.",
		},
		{
			name:         "forbidden on book",
			err:          policy.Authorize(&models.SessionClaims{UserID: 2}, policy.ActionDeleteBook, &policy.Target{OwnerID: 1}),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/dashboard",
			wantFlash:    "You do not have permission to remove this book.",
		},
		{
			name:         "validation",
			err:          &models.ValidationError{Field: "title", Message: "Title is required."},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/back",
			wantFlash:    "Title is required.",
		},
		{
			name:         "duplicate username",
			err:          services.ErrUserAlreadyExists,
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/back",
			wantFlash:    "Username already exists. Please choose a different one.",
		},
		{
			name:         "invalid credentials",
			err:          services.ErrInvalidCredentials,
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/back",
			wantFlash:    "Invalid username or password.",
		},
		{name: "user not found", err: services.ErrUserNotFound, wantStatus: http.StatusNotFound, wantPage: views.PageNotFound},
		{name: "book not found", err: services.ErrBookNotFound, wantStatus: http.StatusNotFound, wantPage: views.PageNotFound},
		{name: "unexpected", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantPage: views.PageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rs, renderer, flasher := newTestResponder(ctrl)
			if tt.wantFlash != "" {
				expectFlash(flasher, models.FlashDanger, tt.wantFlash)
			}
			if tt.wantPage != "" {
				expectPage(renderer, flasher, tt.wantStatus, tt.wantPage, nil)
			}

			rr := httptest.NewRecorder()
			rs.Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "/back")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestResponder_PageFillsClaimsAndFlashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs, renderer, flasher := newTestResponder(ctrl)
	claims := &models.SessionClaims{UserID: 1}
	flashes := []models.Flash{{Category: models.FlashSuccess, Message: "Login successful!"}}

	flasher.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(flashes, nil)
	renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.PageHome, views.PageData{Claims: claims, Flashes: flashes}).Return(nil)

	rs.Page(httptest.NewRecorder(), withClaims(httptest.NewRequest(http.MethodGet, "/", nil), claims), http.StatusOK, views.PageHome, views.PageData{})
}

func TestResponder_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs, renderer, flasher := newTestResponder(ctrl)
	flasher.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(nil, nil)
	renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.PageHome, gomock.Any()).Return(errors.New("template: boom"))

	rr := httptest.NewRecorder()
	rs.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, views.PageHome, views.PageData{})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestHomeAndNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs, renderer, flasher := newTestResponder(ctrl)
	expectPage(renderer, flasher, http.StatusOK, views.PageHome, nil)
	expectPage(renderer, flasher, http.StatusNotFound, views.PageNotFound, nil)

	rr := httptest.NewRecorder()
	NewHomeHandler(rs).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewNotFoundHandler(rs).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
