// Package policy decides whether a session may perform an action on a target.
//
// Rules are evaluated in order and the first match wins:
//
//  1. public actions are always allowed; anything else needs claims
//  2. admin actions need the admin flag
//  3. profile actions apply only to the caller's own account
//  4. book mutations need the admin flag or ownership of the book
//  5. everything else is allowed
package policy

import (
	"errors"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// Denial reasons
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
)

// Redirect targets carried by a Denial
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Action identifies an operation subject to authorization.
type Action int

const (
	ActionRegister Action = iota
	ActionLogin
	ActionPublicRead
	ActionViewDashboard
	ActionViewProfile
	ActionEditProfile
	ActionDeleteAccount
	ActionAddBook
	ActionMutateBook
	ActionDeleteBook
	ActionAdminDashboard
	ActionAdminEditUser
	ActionAdminDeleteUser
	ActionAdminEditBook
	ActionAdminDeleteBook
)

var actionNames = map[Action]string{
	ActionRegister:        "register",
	ActionLogin:           "login",
	ActionPublicRead:      "public_read",
	ActionViewDashboard:   "view_dashboard",
	ActionViewProfile:     "view_profile",
	ActionEditProfile:     "edit_profile",
	ActionDeleteAccount:   "delete_account",
	ActionAddBook:         "add_book",
	ActionMutateBook:      "mutate_book",
	ActionDeleteBook:      "delete_book",
	ActionAdminDashboard:  "admin_dashboard",
	ActionAdminEditUser:   "admin_edit_user",
	ActionAdminDeleteUser: "admin_delete_user",
	ActionAdminEditBook:   "admin_edit_book",
	ActionAdminDeleteBook: "admin_delete_book",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Public reports whether the action needs no session.
func (a Action) Public() bool {
	switch a {
	case ActionRegister, ActionLogin, ActionPublicRead:
		return true
	}
	return false
}

// AdminOnly reports whether the action needs the admin flag.
func (a Action) AdminOnly() bool {
	switch a {
	case ActionAdminDashboard, ActionAdminEditUser, ActionAdminDeleteUser,
		ActionAdminEditBook, ActionAdminDeleteBook:
		return true
	}
	return false
}

func (a Action) onProfile() bool {
	return a == ActionViewProfile || a == ActionEditProfile || a == ActionDeleteAccount
}

func (a Action) onBook() bool {
	return a == ActionMutateBook || a == ActionDeleteBook
}

// Target is the entity an action applies to.
type Target struct {
	UserID  int64 // for profile actions: the account being acted on
	OwnerID int64 // for book actions: the book's owner
}

// BookTarget returns the target of a book action.
func BookTarget(b *models.BookDB) *Target {
	return &Target{OwnerID: b.OwnerID}
}

// Denial is returned by Authorize when an action is refused.
type Denial struct {
	Action   Action
	Reason   error  // ErrNotAuthenticated or ErrForbidden
	Redirect string // where the caller should send the client
	Message  string // one-shot explanation for the next page
}

func (d *Denial) Error() string {
	return d.Action.String() + ": " + d.Reason.Error()
}

func (d *Denial) Unwrap() error {
	return d.Reason
}

// Flash returns the denial message as a flash.
func (d *Denial) Flash() models.Flash {
	return models.Flash{Category: models.FlashDanger, Message: d.Message}
}

// Authorize returns nil when claims may perform action on target, or a *Denial.
// A nil target is only acceptable for actions that do not apply to an entity;
// profile and book actions without a target are refused.
func Authorize(claims *models.SessionClaims, action Action, target *Target) error {
	if action.Public() {
		return nil
	}
	if claims == nil {
		return &Denial{
			Action:   action,
			Reason:   ErrNotAuthenticated,
			Redirect: LoginPath,
			Message:  "You need to log in first.",
		}
	}
	if action.AdminOnly() {
		if !claims.IsAdmin {
			return &Denial{
				Action:   action,
				Reason:   ErrForbidden,
				Redirect: LoginPath,
				Message:  "Access denied. Admins only.",
			}
		}
		return nil
	}
	if action.onProfile() {
		if target == nil || target.UserID != claims.UserID {
			return forbidden(action, "You can only change your own profile.")
		}
		return nil
	}
	if action.onBook() {
		if target == nil {
			return forbidden(action, "You do not have permission to change this book.")
		}
		if claims.IsAdmin || target.OwnerID == claims.UserID {
			return nil
		}
		if action == ActionDeleteBook {
			return forbidden(action, "You do not have permission to remove this book.")
		}
		return forbidden(action, "You do not have permission to change this book.")
	}
	return nil
}

func forbidden(action Action, msg string) *Denial {
	return &Denial{
		Action:   action,
		Reason:   ErrForbidden,
		Redirect: DashboardPath,
		Message:  msg,
	}
}
