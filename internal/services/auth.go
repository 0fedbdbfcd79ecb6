//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

package services

import (
	"context"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
	"github.com/sbilibin2017/gw-book-library/internal/policy"
)

// Credentials is the part of the user store used by registration and login.
type Credentials interface {
	CreateUser(ctx context.Context, username, password string) (*models.UserDB, error)
	VerifyCredentials(ctx context.Context, username, password string) (*models.UserDB, error)
}

// SessionManager starts and ends sessions.
type SessionManager interface {
	Start(ctx context.Context, user *models.UserDB) (string, *models.SessionClaims, error)
	End(ctx context.Context, token string) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	credentials Credentials
	sessions    SessionManager
	events      KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(credentials Credentials, sessions SessionManager, events KafkaWriter) *AuthService {
	return &AuthService{
		credentials: credentials,
		sessions:    sessions,
		events:      events,
	}
}

// Register validates the form and creates the account.
func (svc *AuthService) Register(ctx context.Context, form models.RegisterForm) (*models.UserDB, error) {
	if err := policy.Authorize(nil, policy.ActionRegister, nil); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return svc.credentials.CreateUser(ctx, form.Username, form.Password)
}

// Login verifies the credentials and starts a new session. The session behind
// previous, the token the browser arrived with, is ended first so a replaced
// cookie cannot be replayed.
func (svc *AuthService) Login(ctx context.Context, previous string, form models.LoginForm) (string, *models.SessionClaims, error) {
	if err := form.Validate(); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	user, err := svc.credentials.VerifyCredentials(ctx, form.Username, form.Password)
	if err != nil {
		return "", nil, err
	}

	if previous != "" {
		if err := svc.sessions.End(ctx, previous); err != nil {
			logger.Log.Errorw("failed to end previous session", "user_id", user.ID, "err", err)
			return "", nil, err
		}
	}

	token, claims, err := svc.sessions.Start(ctx, user)
	if err != nil {
		return "", nil, err
	}

	logger.Log.Infow("user logged in", "user_id", user.ID, "session_id", claims.SessionID)
	publishEvent(ctx, svc.events, models.Event{Type: models.EventLogin, ActorID: user.ID, UserID: user.ID})
	return token, claims, nil
}

// Logout ends the session behind token. claims may be nil when the session
// was already gone.
func (svc *AuthService) Logout(ctx context.Context, token string, claims *models.SessionClaims) error {
	if err := svc.sessions.End(ctx, token); err != nil {
		return err
	}
	if claims != nil {
		publishEvent(ctx, svc.events, models.Event{Type: models.EventLogout, ActorID: claims.UserID, UserID: claims.UserID})
	}
	return nil
}
