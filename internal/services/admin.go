//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=services

package services

import (
	"context"

	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
)

// UserDirectory is the part of the user store used by admins.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
	UpdateUser(ctx context.Context, actorID, id int64, changes UserChanges) (*models.UserDB, error)
	DeleteUser(ctx context.Context, actorID, id int64) error
}

// BookCatalog is the part of the book service used by admins.
type BookCatalog interface {
	ListBooks(ctx context.Context) ([]models.BookDB, error)
	GetBook(ctx context.Context, id int64) (*models.BookDB, error)
	EditBook(ctx context.Context, claims *models.SessionClaims, id int64, form models.BookForm) (*models.BookDB, error)
	RemoveBook(ctx context.Context, claims *models.SessionClaims, id int64) error
}

// AdminOverview is everything rendered on the admin dashboard.
type AdminOverview struct {
	Users []models.UserDB
	Books []models.BookDB
}

// AdminService implements the admin dashboard operations. Every call is
// refused unless the session belongs to an admin.
type AdminService struct {
	users UserDirectory
	books BookCatalog
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(users UserDirectory, books BookCatalog) *AdminService {
	return &AdminService{users: users, books: books}
}

// Overview lists all users and all books.
func (svc *AdminService) Overview(ctx context.Context, claims *models.SessionClaims) (*AdminOverview, error) {
	if err := policy.Authorize(claims, policy.ActionAdminDashboard, nil); err != nil {
		return nil, err
	}
	users, err := svc.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	books, err := svc.books.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminOverview{Users: users, Books: books}, nil
}

// User returns a user for the edit form.
func (svc *AdminService) User(ctx context.Context, claims *models.SessionClaims, id int64) (*models.UserDB, error) {
	if err := policy.Authorize(claims, policy.ActionAdminEditUser, nil); err != nil {
		return nil, err
	}
	return svc.users.GetUser(ctx, id)
}

// EditUser sets the username and role of a user.
func (svc *AdminService) EditUser(ctx context.Context, claims *models.SessionClaims, id int64, form models.AdminUserForm) (*models.UserDB, error) {
	if err := policy.Authorize(claims, policy.ActionAdminEditUser, nil); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return svc.users.UpdateUser(ctx, claims.UserID, id, UserChanges{
		Username: &form.Username,
		IsAdmin:  &form.IsAdmin,
	})
}

// DeleteUser removes a user with their books and sessions.
func (svc *AdminService) DeleteUser(ctx context.Context, claims *models.SessionClaims, id int64) error {
	if err := policy.Authorize(claims, policy.ActionAdminDeleteUser, nil); err != nil {
		return err
	}
	return svc.users.DeleteUser(ctx, claims.UserID, id)
}

// Book returns a book for the edit form.
func (svc *AdminService) Book(ctx context.Context, claims *models.SessionClaims, id int64) (*models.BookDB, error) {
	if err := policy.Authorize(claims, policy.ActionAdminEditBook, nil); err != nil {
		return nil, err
	}
	return svc.books.GetBook(ctx, id)
}

// EditBook changes any book's title and optionally its image.
func (svc *AdminService) EditBook(ctx context.Context, claims *models.SessionClaims, id int64, form models.BookForm) (*models.BookDB, error) {
	if err := policy.Authorize(claims, policy.ActionAdminEditBook, nil); err != nil {
		return nil, err
	}
	return svc.books.EditBook(ctx, claims, id, form)
}

// DeleteBook removes any book.
func (svc *AdminService) DeleteBook(ctx context.Context, claims *models.SessionClaims, id int64) error {
	if err := policy.Authorize(claims, policy.ActionAdminDeleteBook, nil); err != nil {
		return err
	}
	return svc.books.RemoveBook(ctx, claims, id)
}
