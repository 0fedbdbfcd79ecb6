package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
	"github.com/sbilibin2017/gw-book-library/internal/services"
)

func TestAdminService_NonAdminDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: a denied call must not reach the stores
	svc := services.NewAdminService(services.NewMockUserDirectory(ctrl), services.NewMockBookCatalog(ctrl))
	ctx := context.Background()

	calls := map[string]func(*models.SessionClaims) error{
		"overview": func(c *models.SessionClaims) error { _, err := svc.Overview(ctx, c); return err },
		"user":     func(c *models.SessionClaims) error { _, err := svc.User(ctx, c, 1); return err },
		"edit user": func(c *models.SessionClaims) error {
			_, err := svc.EditUser(ctx, c, 1, models.AdminUserForm{Username: "x", IsAdmin: true})
			return err
		},
		"delete user": func(c *models.SessionClaims) error { return svc.DeleteUser(ctx, c, 1) },
		"book":        func(c *models.SessionClaims) error { _, err := svc.Book(ctx, c, 1); return err },
		"edit book": func(c *models.SessionClaims) error {
			_, err := svc.EditBook(ctx, c, 1, models.BookForm{Title: "x"})
			return err
		},
		"delete book": func(c *models.SessionClaims) error { return svc.DeleteBook(ctx, c, 1) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call(aliceClaims)
			assert.ErrorIs(t, err, policy.ErrForbidden)

			var denial *policy.Denial
			if assert.ErrorAs(t, err, &denial) {
				assert.Equal(t, policy.LoginPath, denial.Redirect)
				assert.Equal(t, "Access denied. Admins only.", denial.Message)
			}

			assert.ErrorIs(t, call(nil), policy.ErrNotAuthenticated)
		})
	}
}

func TestAdminService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserDirectory(ctrl)
	books := services.NewMockBookCatalog(ctrl)
	svc := services.NewAdminService(users, books)

	users.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{{ID: 1}, {ID: 2}}, nil)
	books.EXPECT().ListBooks(gomock.Any()).Return([]models.BookDB{{ID: 10}}, nil)

	overview, err := svc.Overview(context.Background(), adminClaims)
	assert.NoError(t, err)
	assert.Len(t, overview.Users, 2)
	assert.Len(t, overview.Books, 1)
}

func TestAdminService_EditUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserDirectory(ctrl)
	svc := services.NewAdminService(users, services.NewMockBookCatalog(ctrl))

	users.EXPECT().
		UpdateUser(gomock.Any(), int64(99), int64(1), services.UserChanges{Username: strPtr("alice"), IsAdmin: boolPtr(true)}).
		Return(&models.UserDB{ID: 1, Username: "alice", IsAdmin: true}, nil)

	user, err := svc.EditUser(context.Background(), adminClaims, 1, models.AdminUserForm{Username: " alice ", IsAdmin: true})
	assert.NoError(t, err)
	assert.True(t, user.IsAdmin)

	_, err = svc.EditUser(context.Background(), adminClaims, 1, models.AdminUserForm{})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAdminService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserDirectory(ctrl)
	books := services.NewMockBookCatalog(ctrl)
	svc := services.NewAdminService(users, books)
	ctx := context.Background()

	users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, services.ErrUserNotFound)
	_, err := svc.User(ctx, adminClaims, 1)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	users.EXPECT().DeleteUser(gomock.Any(), int64(99), int64(1)).Return(nil)
	assert.NoError(t, svc.DeleteUser(ctx, adminClaims, 1))

	books.EXPECT().GetBook(gomock.Any(), int64(10)).Return(&models.BookDB{ID: 10}, nil)
	book, err := svc.Book(ctx, adminClaims, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), book.ID)

	form := models.BookForm{Title: "Go"}
	books.EXPECT().EditBook(gomock.Any(), adminClaims, int64(10), form).Return(&models.BookDB{ID: 10, Title: "Go"}, nil)
	_, err = svc.EditBook(ctx, adminClaims, 10, form)
	assert.NoError(t, err)

	books.EXPECT().RemoveBook(gomock.Any(), adminClaims, int64(10)).Return(nil)
	assert.NoError(t, svc.DeleteBook(ctx, adminClaims, 10))
}
