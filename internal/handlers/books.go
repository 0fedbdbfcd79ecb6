//go:generate mockgen -source=books.go -destination=mock_books.go -package=handlers

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/middlewares"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/views"
)

// BookAdder stores a new book for the session's user.
type BookAdder interface {
	AddBook(ctx context.Context, claims *models.SessionClaims, form models.BookForm) (*models.BookDB, error)
}

// BookRemover deletes a book on behalf of the session's user.
type BookRemover interface {
	RemoveBook(ctx context.Context, claims *models.SessionClaims, id int64) error
}

// BookImageGetter returns the stored image of a book.
type BookImageGetter interface {
	BookImage(ctx context.Context, id int64) ([]byte, error)
}

// readBookForm reads a title and an optional image from a multipart or
// urlencoded body no larger than maxBytes. The image is read fully into memory.
func readBookForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (models.BookForm, error) {
	var form models.BookForm

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return form, &models.ValidationError{Field: "image", Message: "Image is too large."}
		}
		return form, &models.ValidationError{Field: "image", Message: "Could not read the upload."}
	}
	form.Title = r.FormValue("title")

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return form, nil
	case err != nil:
		return form, &models.ValidationError{Field: "image", Message: "Could not read the upload."}
	}
	defer file.Close()

	if header.Filename == "" {
		return form, nil
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return form, &models.ValidationError{Field: "image", Message: "Could not read the upload."}
	}
	if len(data) > 0 {
		form.Image = data
	}
	return form, nil
}

// NewAddBookPageHandler renders the add-book form.
// @Summary Add-book form
// @Tags books
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /add_book [get]
func NewAddBookPageHandler(rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.Page(w, r, http.StatusOK, views.PageAddBook, views.PageData{})
	}
}

// NewAddBookHandler stores a new book owned by the session's user.
// @Summary Add a book
// @Tags books
// @Accept multipart/form-data
// @Produce html
// @Param title formData string true "Book title"
// @Param image formData file false "Cover image"
// @Success 303 "Redirect to /dashboard with a success flash"
// @Failure 303 "Redirect to /add_book with an error flash"
// @Router /add_book [post]
func NewAddBookHandler(svc BookAdder, maxBytes int64, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := readBookForm(w, r, maxBytes)
		if err != nil {
			rs.Error(w, r, err, "/add_book")
			return
		}

		if _, err := svc.AddBook(r.Context(), middlewares.ClaimsFromContext(r.Context()), form); err != nil {
			rs.Error(w, r, err, "/add_book")
			return
		}

		rs.Redirect(w, r, "/dashboard", success("Book added successfully!"))
	}
}

// NewRemoveBookHandler deletes a book if the session's user owns it or is an admin.
// @Summary Remove a book
// @Tags books
// @Produce html
// @Param id path int true "Book ID"
// @Success 303 "Redirect to /dashboard with a success flash"
// @Failure 303 "Redirect to /dashboard with a permission flash"
// @Failure 404 {string} string "Book not found"
// @Router /remove_book/{id} [get]
func NewRemoveBookHandler(svc BookRemover, rs *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			rs.NotFound(w, r)
			return
		}

		if err := svc.RemoveBook(r.Context(), middlewares.ClaimsFromContext(r.Context()), id); err != nil {
			rs.Error(w, r, err, "/dashboard")
			return
		}

		rs.Redirect(w, r, "/dashboard", success("Book removed successfully!"))
	}
}

// NewBookImageHandler streams the stored image of a book.
// @Summary Book image
// @Tags books
// @Produce image/jpeg
// @Produce image/png
// @Param id path int true "Book ID"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 "Book or image absent, empty body"
// @Router /book_image/{id} [get]
func NewBookImageHandler(svc BookImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		image, err := svc.BookImage(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to load book image", "book_id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if len(image) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		contentType := http.DetectContentType(image)
		if !strings.HasPrefix(contentType, "image/") {
			contentType = "image/jpeg"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(image)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(image)
	}
}

// RegisterAddBookHandlers registers the add-book routes.
func RegisterAddBookHandlers(r chi.Router, page, submit http.HandlerFunc) {
	r.Get("/add_book", page)
	r.Post("/add_book", submit)
}

// RegisterRemoveBookHandler registers the remove-book route.
func RegisterRemoveBookHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/remove_book/{id}", h)
}

// RegisterBookImageHandler registers the book image route.
func RegisterBookImageHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/book_image/{id}", h)
}
