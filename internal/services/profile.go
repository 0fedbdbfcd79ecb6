//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=services

package services

import (
	"context"

	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
)

// AccountManager is the part of the user store used for self-service.
type AccountManager interface {
	GetUser(ctx context.Context, id int64) (*models.UserDB, error)
	UpdateUser(ctx context.Context, actorID, id int64, changes UserChanges) (*models.UserDB, error)
	DeleteUser(ctx context.Context, actorID, id int64) error
}

// ProfileService lets a signed-in user read, edit and delete their own account.
type ProfileService struct {
	users AccountManager
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users AccountManager) *ProfileService {
	return &ProfileService{users: users}
}

func selfTarget(claims *models.SessionClaims) *policy.Target {
	if claims == nil {
		return nil
	}
	return &policy.Target{UserID: claims.UserID}
}

// Profile returns the account of the session's user.
func (svc *ProfileService) Profile(ctx context.Context, claims *models.SessionClaims) (*models.UserDB, error) {
	if err := policy.Authorize(claims, policy.ActionViewProfile, selfTarget(claims)); err != nil {
		return nil, err
	}
	return svc.users.GetUser(ctx, claims.UserID)
}

// UpdateProfile changes the username and/or password of the session's user.
func (svc *ProfileService) UpdateProfile(ctx context.Context, claims *models.SessionClaims, form models.ProfileForm) (*models.UserDB, error) {
	if err := policy.Authorize(claims, policy.ActionEditProfile, selfTarget(claims)); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var changes UserChanges
	if form.NewUsername != "" {
		changes.Username = &form.NewUsername
	}
	if form.NewPassword != "" {
		changes.Password = &form.NewPassword
	}
	return svc.users.UpdateUser(ctx, claims.UserID, claims.UserID, changes)
}

// DeleteAccount removes the session's user, their books and all their sessions.
func (svc *ProfileService) DeleteAccount(ctx context.Context, claims *models.SessionClaims) error {
	if err := policy.Authorize(claims, policy.ActionDeleteAccount, selfTarget(claims)); err != nil {
		return err
	}
	return svc.users.DeleteUser(ctx, claims.UserID, claims.UserID)
}
