//go:generate mockgen -source=sessions.go -destination=mock_sessions.go -package=services

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-library/internal/jwt"
	"github.com/sbilibin2017/gw-book-library/internal/logger"
	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// ErrSessionNotFound is returned for missing, malformed, expired or revoked sessions.
var ErrSessionNotFound = errors.New("session not found")

// Tokener signs and parses session tokens.
type Tokener interface {
	Generate(ctx context.Context, sessionID uuid.UUID, userID int64, isAdmin bool) (string, time.Time, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetClaimsUnverifiedExpiry(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionStorer is the registry of live sessions.
type SessionStorer interface {
	Save(ctx context.Context, sessionID uuid.UUID, userID int64, ttl time.Duration) error
	GetUserID(ctx context.Context, sessionID uuid.UUID) (int64, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID int64) error
}

// SessionService turns a verified user into a signed, expiring session and back.
//
// Per token the lifecycle is Absent -> Active -> {Expired, LoggedOut}. A token is
// active only while it is correctly signed, unexpired and still registered;
// once removed from the registry it never becomes active again.
type SessionService struct {
	tokens   Tokener
	store    SessionStorer
	lifetime time.Duration
}

// NewSessionService creates a SessionService. lifetime must match the Tokener's expiration.
func NewSessionService(tokens Tokener, store SessionStorer, lifetime time.Duration) *SessionService {
	return &SessionService{tokens: tokens, store: store, lifetime: lifetime}
}

// Start mints a fresh session for user.
func (s *SessionService) Start(ctx context.Context, user *models.UserDB) (string, *models.SessionClaims, error) {
	sessionID := uuid.New()

	token, expiresAt, err := s.tokens.Generate(ctx, sessionID, user.ID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "user_id", user.ID, "err", err)
		return "", nil, err
	}

	if err := s.store.Save(ctx, sessionID, user.ID, s.lifetime); err != nil {
		logger.Log.Errorw("failed to register session", "user_id", user.ID, "err", err)
		return "", nil, err
	}

	return token, &models.SessionClaims{
		SessionID: sessionID,
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: expiresAt,
	}, nil
}

// Read returns the claims of an active session or ErrSessionNotFound.
func (s *SessionService) Read(ctx context.Context, token string) (*models.SessionClaims, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	claims, err := s.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session token", "err", err)
		return nil, ErrSessionNotFound
	}

	userID, err := s.store.GetUserID(ctx, claims.SessionID)
	if err != nil {
		logger.Log.Errorw("failed to look up session", "session_id", claims.SessionID, "err", err)
		return nil, err
	}
	if userID == 0 || userID != claims.UserID {
		return nil, ErrSessionNotFound
	}

	out := &models.SessionClaims{
		SessionID: claims.SessionID,
		UserID:    claims.UserID,
		IsAdmin:   claims.IsAdmin,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// End revokes the session behind token immediately, expired or not.
// Unknown or malformed tokens are ignored.
func (s *SessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.GetClaimsUnverifiedExpiry(ctx, token)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to end session", "session_id", claims.SessionID, "err", err)
		return err
	}
	return nil
}

// EndAllForUser revokes every session of userID.
func (s *SessionService) EndAllForUser(ctx context.Context, userID int64) error {
	return s.store.DeleteByUserID(ctx, userID)
}
