package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/services"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

func newAdminRouter(svc AdminManager, rs *Responder) chi.Router {
	r := chi.NewRouter()
	RegisterAdminHandlers(r, AdminHandlers{
		Dashboard:    NewAdminHandler(svc, rs),
		EditUserPage: NewEditUserPageHandler(svc, rs),
		EditUser:     NewEditUserHandler(svc, rs),
		DeleteUser:   NewDeleteUserHandler(svc, rs),
		EditBookPage: NewEditBookPageHandler(svc, rs),
		EditBook:     NewEditBookHandler(svc, 1<<20, rs),
		DeleteBook:   NewDeleteBookHandler(svc, rs),
	})
	return r
}

func TestAdminHandler(t *testing.T) {
	t.Run("admin sees everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, renderer, flasher := newTestResponder(ctrl)

		overview := &services.AdminOverview{
			Users: []models.UserDB{{ID: 1}, {ID: 99}},
			Books: []models.BookDB{{ID: 10}},
		}
		svc.EXPECT().Overview(gomock.Any(), admin).Return(overview, nil)
		expectPage(renderer, flasher, http.StatusOK, views.PageAdmin, func(data views.PageData) {
			assert.Len(t, data.Users, 2)
			assert.Len(t, data.Books, 1)
		})

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin", nil), admin))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-admin is sent to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, _, flasher := newTestResponder(ctrl)

		svc.EXPECT().Overview(gomock.Any(), alice).Return(nil, policy.Authorize(alice, policy.ActionAdminDashboard, nil))
		expectFlash(flasher, models.FlashDanger, "Access denied. Admins only.")

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin", nil), alice))
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})
}

func TestEditUserHandlers(t *testing.T) {
	t.Run("form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, renderer, flasher := newTestResponder(ctrl)

		user := &models.UserDB{ID: 1, Username: "alice"}
		svc.EXPECT().User(gomock.Any(), admin, int64(1)).Return(user, nil)
		expectPage(renderer, flasher, http.StatusOK, views.PageEditUser, func(data views.PageData) {
			assert.Equal(t, user, data.User)
		})

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin/edit_user/1", nil), admin))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, renderer, flasher := newTestResponder(ctrl)

		svc.EXPECT().User(gomock.Any(), admin, int64(42)).Return(nil, services.ErrUserNotFound)
		expectPage(renderer, flasher, http.StatusNotFound, views.PageNotFound, nil)

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin/edit_user/42", nil), admin))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("promote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, _, flasher := newTestResponder(ctrl)

		svc.EXPECT().EditUser(gomock.Any(), admin, int64(1), models.AdminUserForm{Username: "alice", IsAdmin: true}).
			Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
		expectFlash(flasher, models.FlashSuccess, "User details updated successfully!")

		rr := httptest.NewRecorder()
		req := withClaims(postForm("/admin/edit_user/1", url.Values{"username": {"alice"}, "is_admin": {"on"}}), admin)
		newAdminRouter(svc, rs).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin", rr.Header().Get("Location"))
	})

	t.Run("duplicate name goes back to the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, _, flasher := newTestResponder(ctrl)

		svc.EXPECT().EditUser(gomock.Any(), admin, int64(1), models.AdminUserForm{Username: "bob"}).
			Return(nil, services.ErrUserAlreadyExists)
		expectFlash(flasher, models.FlashDanger, "Username already exists. Please choose a different one.")

		rr := httptest.NewRecorder()
		req := withClaims(postForm("/admin/edit_user/1", url.Values{"username": {"bob"}}), admin)
		newAdminRouter(svc, rs).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin/edit_user/1", rr.Header().Get("Location"))
	})
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAdminManager(ctrl)
	rs, _, flasher := newTestResponder(ctrl)

	svc.EXPECT().DeleteUser(gomock.Any(), admin, int64(1)).Return(nil)
	expectFlash(flasher, models.FlashSuccess, "User deleted successfully!")

	rr := httptest.NewRecorder()
	newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin/delete_user/1", nil), admin))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin", rr.Header().Get("Location"))
}

func TestEditBookHandlers(t *testing.T) {
	t.Run("form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, renderer, flasher := newTestResponder(ctrl)

		book := &models.BookDB{ID: 10, Title: "Go"}
		svc.EXPECT().Book(gomock.Any(), admin, int64(10)).Return(book, nil)
		expectPage(renderer, flasher, http.StatusOK, views.PageEditBook, func(data views.PageData) {
			assert.Equal(t, book, data.Book)
		})

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin/edit_book/10", nil), admin))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("new title and image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, _, flasher := newTestResponder(ctrl)

		svc.EXPECT().EditBook(gomock.Any(), admin, int64(10), models.BookForm{Title: "Go 2", Image: pngHeader}).
			Return(&models.BookDB{ID: 10}, nil)
		expectFlash(flasher, models.FlashSuccess, "Book details updated successfully!")

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(multipartBook(t, "/admin/edit_book/10", "Go 2", pngHeader), admin))
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin", rr.Header().Get("Location"))
	})

	t.Run("missing book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAdminManager(ctrl)
		rs, renderer, flasher := newTestResponder(ctrl)

		svc.EXPECT().EditBook(gomock.Any(), admin, int64(11), models.BookForm{Title: "Go"}).Return(nil, services.ErrBookNotFound)
		expectPage(renderer, flasher, http.StatusNotFound, views.PageNotFound, nil)

		rr := httptest.NewRecorder()
		newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(multipartBook(t, "/admin/edit_book/11", "Go", nil), admin))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAdminManager(ctrl)
	rs, _, flasher := newTestResponder(ctrl)

	svc.EXPECT().DeleteBook(gomock.Any(), admin, int64(10)).Return(nil)
	expectFlash(flasher, models.FlashSuccess, "Book deleted successfully!")

	rr := httptest.NewRecorder()
	newAdminRouter(svc, rs).ServeHTTP(rr, withClaims(httptest.NewRequest(http.MethodGet, "/admin/delete_book/10", nil), admin))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin", rr.Header().Get("Location"))
}
