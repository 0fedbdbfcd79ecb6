//go:generate mockgen -source=books.go -destination=mock_books.go -package=services

package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
)

// ErrBookNotFound is returned when a book does not exist.
var ErrBookNotFound = errors.New("book not found")

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, id int64) (*models.BookDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.BookDB, error)
	List(ctx context.Context) ([]models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Create(ctx context.Context, title string, image []byte, ownerID int64) (*models.BookDB, error)
	Update(ctx context.Context, id int64, upd models.BookUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BookService manages book records. Mutations are gated by the access policy.
type BookService struct {
	reader BookReader
	writer BookWriter
	events KafkaWriter
}

// NewBookService creates a new BookService instance. events may be nil.
func NewBookService(reader BookReader, writer BookWriter, events KafkaWriter) *BookService {
	return &BookService{reader: reader, writer: writer, events: events}
}

// Dashboard lists the books owned by the session's user.
func (svc *BookService) Dashboard(ctx context.Context, claims *models.SessionClaims) ([]models.BookDB, error) {
	if err := policy.Authorize(claims, policy.ActionViewDashboard, nil); err != nil {
		return nil, err
	}
	books, err := svc.reader.ListByOwner(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list books", "owner_id", claims.UserID, "err", err)
		return nil, err
	}
	return books, nil
}

// AddBook stores a new book owned by the session's user.
func (svc *BookService) AddBook(ctx context.Context, claims *models.SessionClaims, form models.BookForm) (*models.BookDB, error) {
	if err := policy.Authorize(claims, policy.ActionAddBook, nil); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	book, err := svc.writer.Create(ctx, form.Title, form.Image, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to save book", "owner_id", claims.UserID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventBookAdded, ActorID: claims.UserID, UserID: claims.UserID, BookID: book.ID})
	return book, nil
}

// GetBook returns the book or ErrBookNotFound.
func (svc *BookService) GetBook(ctx context.Context, id int64) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "book_id", id, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListBooks returns every book.
func (svc *BookService) ListBooks(ctx context.Context) ([]models.BookDB, error) {
	books, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, err
	}
	return books, nil
}

// EditBook changes the title and, when one is given, the image of a book.
// Only the owner or an admin may do it.
func (svc *BookService) EditBook(ctx context.Context, claims *models.SessionClaims, id int64, form models.BookForm) (*models.BookDB, error) {
	if err := policy.Authorize(claims, policy.ActionViewDashboard, nil); err != nil {
		return nil, err
	}
	book, err := svc.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(claims, policy.ActionMutateBook, policy.BookTarget(book)); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, models.BookUpdate{Title: &form.Title, Image: form.Image})
	if err != nil {
		logger.Log.Errorw("failed to update book", "book_id", id, "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrBookNotFound
	}

	book.Title = form.Title
	if form.Image != nil {
		book.Image = form.Image
		book.HasImage = true
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventBookUpdated, ActorID: claims.UserID, UserID: book.OwnerID, BookID: id})
	return book, nil
}

// RemoveBook deletes a book. Only the owner or an admin may do it.
// A non-admin asking for a missing book gets the same denial as for a book
// owned by someone else; admins get ErrBookNotFound.
func (svc *BookService) RemoveBook(ctx context.Context, claims *models.SessionClaims, id int64) error {
	if err := policy.Authorize(claims, policy.ActionViewDashboard, nil); err != nil {
		return err
	}
	book, err := svc.GetBook(ctx, id)
	switch {
	case errors.Is(err, ErrBookNotFound) && !claims.IsAdmin:
		// user ids start at 1, so the zero owner never matches the session
		return policy.Authorize(claims, policy.ActionDeleteBook, &policy.Target{})
	case err != nil:
		return err
	}
	if err := policy.Authorize(claims, policy.ActionDeleteBook, policy.BookTarget(book)); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "book_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventBookRemoved, ActorID: claims.UserID, UserID: book.OwnerID, BookID: id})
	return nil
}

// BookImage returns the stored image of a book, or nil when the book or
// its image is absent.
func (svc *BookService) BookImage(ctx context.Context, id int64) ([]byte, error) {
	if err := policy.Authorize(nil, policy.ActionPublicRead, nil); err != nil {
		return nil, err
	}
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book image", "book_id", id, "err", err)
		return nil, err
	}
	if book == nil || len(book.Image) == 0 {
		return nil, nil
	}
	return book.Image, nil
}
