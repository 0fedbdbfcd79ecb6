package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

func TestAuthorize(t *testing.T) {
	alice := &models.SessionClaims{UserID: 1}
	bob := &models.SessionClaims{UserID: 2}
	admin := &models.SessionClaims{UserID: 99, IsAdmin: true}
	aliceBook := &Target{OwnerID: 1}

	tests := []struct {
		name         string
		claims       *models.SessionClaims
		action       Action
		target       *Target
		wantReason   error
		wantRedirect string
	}{
		{"anonymous register", nil, ActionRegister, nil, nil, ""},
		{"anonymous login", nil, ActionLogin, nil, nil, ""},
		{"anonymous public read", nil, ActionPublicRead, nil, nil, ""},
		{"anonymous dashboard", nil, ActionViewDashboard, nil, ErrNotAuthenticated, LoginPath},
		{"anonymous admin", nil, ActionAdminDashboard, nil, ErrNotAuthenticated, LoginPath},
		{"anonymous book delete", nil, ActionDeleteBook, aliceBook, ErrNotAuthenticated, LoginPath},
		{"user dashboard", alice, ActionViewDashboard, nil, nil, ""},
		{"user add book", alice, ActionAddBook, nil, nil, ""},
		{"user admin dashboard", alice, ActionAdminDashboard, nil, ErrForbidden, LoginPath},
		{"user admin delete user", alice, ActionAdminDeleteUser, nil, ErrForbidden, LoginPath},
		{"user admin edit book", alice, ActionAdminEditBook, aliceBook, ErrForbidden, LoginPath},
		{"admin dashboard", admin, ActionAdminDashboard, nil, nil, ""},
		{"admin delete user", admin, ActionAdminDeleteUser, nil, nil, ""},
		{"own profile edit", alice, ActionEditProfile, &Target{UserID: 1}, nil, ""},
		{"other profile edit", bob, ActionEditProfile, &Target{UserID: 1}, ErrForbidden, DashboardPath},
		{"admin editing other profile via self-service", admin, ActionEditProfile, &Target{UserID: 1}, ErrForbidden, DashboardPath},
		{"profile without target", alice, ActionDeleteAccount, nil, ErrForbidden, DashboardPath},
		{"owner deletes book", alice, ActionDeleteBook, aliceBook, nil, ""},
		{"owner mutates book", alice, ActionMutateBook, aliceBook, nil, ""},
		{"stranger deletes book", bob, ActionDeleteBook, aliceBook, ErrForbidden, DashboardPath},
		{"stranger mutates book", bob, ActionMutateBook, aliceBook, ErrForbidden, DashboardPath},
		{"admin deletes book", admin, ActionDeleteBook, aliceBook, nil, ""},
		{"book action without target", admin, ActionDeleteBook, nil, ErrForbidden, DashboardPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.claims, tt.action, tt.target)
			if tt.wantReason == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantReason)
			var denial *Denial
			if assert.True(t, errors.As(err, &denial)) {
				assert.Equal(t, tt.wantRedirect, denial.Redirect)
				assert.NotEmpty(t, denial.Message)
				assert.Equal(t, tt.action, denial.Action)
				assert.Equal(t, models.FlashDanger, denial.Flash().Category)
			}
		})
	}
}

func TestDenial_Messages(t *testing.T) {
	err := Authorize(&models.SessionClaims{UserID: 2}, ActionDeleteBook, &Target{OwnerID: 1})
	var denial *Denial
	assert.True(t, errors.As(err, &denial))
	assert.Equal(t, "You do not have permission to remove this book.", denial.Message)
	assert.Equal(t, "delete_book: forbidden", denial.Error())

	err = Authorize(&models.SessionClaims{UserID: 2}, ActionAdminDashboard, nil)
	assert.True(t, errors.As(err, &denial))
	assert.Equal(t, "Access denied. Admins only.", denial.Message)
}

func TestTargets(t *testing.T) {
	assert.Equal(t, int64(7), BookTarget(&models.BookDB{ID: 1, OwnerID: 7}).OwnerID)
	assert.Equal(t, "unknown", Action(1000).String())
}
