//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=handlers

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/services"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// AdminManager defines the admin dashboard operations.
type AdminManager interface {
	Overview(ctx context.Context, claims *models.SessionClaims) (*services.AdminOverview, error)
	User(ctx context.Context, claims *models.SessionClaims, id int64) (*models.UserDB, error)
	EditUser(ctx context.Context, claims *models.SessionClaims, id int64, form models.AdminUserForm) (*models.UserDB, error)
	DeleteUser(ctx context.Context, claims *models.SessionClaims, id int64) error
	Book(ctx context.Context, claims *models.SessionClaims, id int64) (*models.BookDB, error)
	EditBook(ctx context.Context, claims *models.SessionClaims, id int64, form models.BookForm) (*models.BookDB, error)
	DeleteBook(ctx context.Context, claims *models.SessionClaims, id int64) error
}

// NewAdminHandler renders every user and every book.
// @Summary Admin dashboard
// @Tags admin
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 303 "Redirect to /login with an access denied flash"
// @Router /admin [get]
func NewAdminHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context(), middlewares.ClaimsFromContext(r.Context()))
		if err != nil {
			rs.Error(w, r, err, "/admin")
			return
		}
		rs.Page(w, r, http.StatusOK, views.PageAdmin, views.PageData{Users: overview.Users, Books: overview.Books})
	}
}

// NewEditUserPageHandler renders the user edit form.
// @Summary User edit form
// @Tags admin
// @Produce html
// @Param id path int true "User ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "User not found"
// @Router /admin/edit_user/{id} [get]
func NewEditUserPageHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}

		user, err := svc.User(r.Context(), middlewares.ClaimsFromContext(r.Context()), id)
		if err != nil {
			rs.Error(w, r, err, "/admin")
			return
		}
		rs.Page(w, r, http.StatusOK, views.PageEditUser, views.PageData{User: user})
	}
}

// NewEditUserHandler sets a user's username and role.
// @Summary Edit user
// @Description Changing the role ends every session of the user.
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "User ID"
// @Param username formData string true "Username"
// @Param is_admin formData string false "Present when the user is an admin"
// @Success 303 "Redirect to /admin with a success flash"
// @Failure 404 {string} string "User not found"
// @Router /admin/edit_user/{id} [post]
func NewEditUserHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}
		back := "/admin/edit_user/" + strconv.FormatInt(id, 10)

		if err := r.ParseForm(); err != nil {
			rs.Redirect(w, r, back, danger("Could not read the form."))
			return
		}
		_, isAdmin := r.PostForm["is_admin"]
		form := models.AdminUserForm{
			Username: r.PostForm.Get("username"),
			IsAdmin:  isAdmin,
		}

		if _, err := svc.EditUser(r.Context(), middlewares.ClaimsFromContext(r.Context()), id, form); err != nil {
			rs.Error(w, r, err, back)
			return
		}

		rs.Redirect(w, r, "/admin", success("User details updated successfully!"))
	}
}

// NewDeleteUserHandler deletes a user together with their books.
// @Summary Delete user
// @Tags admin
// @Produce html
// @Param id path int true "User ID"
// @Success 303 "Redirect to /admin with a success flash"
// @Failure 404 {string} string "User not found"
// @Router /admin/delete_user/{id} [get]
func NewDeleteUserHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}

		if err := svc.DeleteUser(r.Context(), middlewares.ClaimsFromContext(r.Context()), id); err != nil {
			rs.Error(w, r, err, "/admin")
			return
		}

		rs.Redirect(w, r, "/admin", success("User deleted successfully!"))
	}
}

// NewEditBookPageHandler renders the book edit form.
// @Summary Book edit form
// @Tags admin
// @Produce html
// @Param id path int true "Book ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Book not found"
// @Router /admin/edit_book/{id} [get]
func NewEditBookPageHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}

		book, err := svc.Book(r.Context(), middlewares.ClaimsFromContext(r.Context()), id)
		if err != nil {
			rs.Error(w, r, err, "/admin")
			return
		}
		rs.Page(w, r, http.StatusOK, views.PageEditBook, views.PageData{Book: book})
	}
}

// NewEditBookHandler changes any book's title and optionally its image.
// @Summary Edit book
// @Tags admin
// @Accept multipart/form-data
// @Produce html
// @Param id path int true "Book ID"
// @Param title formData string true "Book title"
// @Param image formData file false "New cover image"
// @Success 303 "Redirect to /admin with a success flash"
// @Failure 404 {string} string "Book not found"
// @Router /admin/edit_book/{id} [post]
func NewEditBookHandler(svc AdminManager, maxBytes int64, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}
		back := "/admin/edit_book/" + strconv.FormatInt(id, 10)

		form, err := readBookForm(w, r, maxBytes)
		if err != nil {
			rs.Error(w, r, err, back)
			return
		}

		if _, err := svc.EditBook(r.Context(), middlewares.ClaimsFromContext(r.Context()), id, form); err != nil {
			rs.Error(w, r, err, back)
			return
		}

		rs.Redirect(w, r, "/admin", success("Book details updated successfully!"))
	}
}

// NewDeleteBookHandler deletes any book.
// @Summary Delete book
// @Tags admin
// @Produce html
// @Param id path int true "Book ID"
// @Success 303 "Redirect to /admin with a success flash"
// @Failure 404 {string} string "Book not found"
// @Router /admin/delete_book/{id} [get]
func NewDeleteBookHandler(svc AdminManager, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}

		if err := svc.DeleteBook(r.Context(), middlewares.ClaimsFromContext(r.Context()), id); err != nil {
			rs.Error(w, r, err, "/admin")
			return
		}

		rs.Redirect(w, r, "/admin", success("Book deleted successfully!"))
	}
}

// AdminHandlers groups the admin route handlers.
type AdminHandlers struct {
	Dashboard    http.HandlerFunc
	EditUserPage http.HandlerFunc
	EditUser     http.HandlerFunc
	DeleteUser   http.HandlerFunc
	EditBookPage http.HandlerFunc
	EditBook     http.HandlerFunc
	DeleteBook   http.HandlerFunc
}

// RegisterAdminHandlers registers the admin routes.
func RegisterAdminHandlers(r chi.Router, h AdminHandlers) {
	r.Get("/admin", h.Dashboard)
	r.Get("/admin/edit_user/{id}", h.EditUserPage)
	r.Post("/admin/edit_user/{id}", h.EditUser)
	r.Get("/admin/delete_user/{id}", h.DeleteUser)
	r.Get("/admin/edit_book/{id}", h.EditBookPage)
	r.Post("/admin/edit_book/{id}", h.EditBook)
	r.Get("/admin/delete_book/{id}", h.DeleteBook)
}
