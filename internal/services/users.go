//go:generate mockgen -source=users.go -destination=mock_users.go -package=services

package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SessionRevoker ends every session of a user.
type SessionRevoker interface {
	EndAllForUser(ctx context.Context, userID int64) error
}

// UserChanges is a partial user edit; nil fields are left unchanged.
type UserChanges struct {
	Username *string
	Password *string // cleartext, hashed before it reaches the store
	IsAdmin  *bool
}

// dummyHash keeps VerifyCredentials' timing independent of whether the user exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.MinCost)

// UserService owns user records: identity, hashed secret and role flag.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionRevoker
	events   KafkaWriter
	cost     int
}

// NewUserService creates a new UserService instance. events may be nil.
func NewUserService(reader UserReader, writer UserWriter, sessions SessionRevoker, events KafkaWriter) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		events:   events,
		cost:     bcrypt.DefaultCost,
	}
}

func (svc *UserService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &models.ValidationError{Field: "password", Message: "Password is too long."}
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}

// CreateUser hashes the password and stores a new non-admin user.
func (svc *UserService) CreateUser(ctx context.Context, username, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := svc.hash(password)
	if err != nil {
		return nil, err
	}

	user, err := svc.writer.Create(ctx, username, hashed, false)
	if errors.Is(err, models.ErrDuplicateKey) {
		// lost a race with a concurrent registration
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventUserRegistered, ActorID: user.ID, UserID: user.ID})
	return user, nil
}

// VerifyCredentials returns the user when the password matches. A missing user
// and a wrong password are both reported as ErrInvalidCredentials.
func (svc *UserService) VerifyCredentials(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Log.Infow("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser returns the user or ErrUserNotFound.
func (svc *UserService) GetUser(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns every user.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial edit. A new password is re-hashed; a role change
// ends the user's sessions so no stale admin flag survives in a token.
func (svc *UserService) UpdateUser(ctx context.Context, actorID, id int64, changes UserChanges) (*models.UserDB, error) {
	current, err := svc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := models.UserUpdate{Username: changes.Username, IsAdmin: changes.IsAdmin}
	if changes.Password != nil {
		hashed, err := svc.hash(*changes.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hashed
	}
	if upd.Username != nil && *upd.Username != current.Username {
		if existing, err := svc.reader.GetByUsername(ctx, *upd.Username); err != nil {
			logger.Log.Errorw("failed to check user exists", "err", err)
			return nil, err
		} else if existing != nil {
			return nil, ErrUserAlreadyExists
		}
	}

	user, err := svc.writer.Update(ctx, id, upd)
	switch {
	case errors.Is(err, models.ErrDuplicateKey):
		return nil, ErrUserAlreadyExists
	case err != nil:
		logger.Log.Errorw("failed to update user", "user_id", id, "err", err)
		return nil, err
	case user == nil:
		return nil, ErrUserNotFound
	}

	if user.IsAdmin != current.IsAdmin {
		if err := svc.sessions.EndAllForUser(ctx, id); err != nil {
			logger.Log.Errorw("failed to end sessions after role change", "user_id", id, "err", err)
			return nil, err
		}
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventUserUpdated, ActorID: actorID, UserID: id})
	return user, nil
}

// DeleteUser removes the user together with their books and ends their sessions.
func (svc *UserService) DeleteUser(ctx context.Context, actorID, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	if err := svc.sessions.EndAllForUser(ctx, id); err != nil {
		logger.Log.Errorw("failed to end sessions of deleted user", "user_id", id, "err", err)
		return err
	}

	publishEvent(ctx, svc.events, models.Event{Type: models.EventUserDeleted, ActorID: actorID, UserID: id})
	return nil
}

// EnsureAdmin creates the bootstrap admin when absent and promotes an existing
// account of that name. It reports whether an account was created.
func (svc *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if existing.IsAdmin {
			return false, nil
		}
		isAdmin := true
		if _, err := svc.writer.Update(ctx, existing.ID, models.UserUpdate{IsAdmin: &isAdmin}); err != nil {
			return false, err
		}
		logger.Log.Infow("promoted bootstrap admin", "username", username)
		return false, nil
	}

	hashed, err := svc.hash(password)
	if err != nil {
		return false, err
	}
	if _, err := svc.writer.Create(ctx, username, hashed, true); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			return false, nil
		}
		return false, err
	}
	logger.Log.Infow("created bootstrap admin", "username", username)
	return true, nil
}
