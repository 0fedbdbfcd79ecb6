package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration is the session lifetime used when none is configured.
const DefaultExpiration = 5 * 24 * time.Hour

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnexpectedAlg   = errors.New("unexpected signing method")
	ErrMissingIdentity = errors.New("token carries no session identity")
)

// Claims are the session claims carried by a signed token.
type Claims struct {
	SessionID uuid.UUID `json:"sid"`
	UserID    int64     `json:"uid"`
	IsAdmin   bool      `json:"adm"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.SecretKey = key }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for a session and returns it with its expiry.
func (j *JWT) Generate(ctx context.Context, sessionID uuid.UUID, userID int64, isAdmin bool) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.Exp)
	claims := Claims{
		SessionID: sessionID,
		UserID:    userID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// GetClaims parses and verifies the token, including its expiry.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString)
}

// GetClaimsUnverifiedExpiry verifies the signature but accepts expired tokens.
// Logout uses it so an expired session can still be revoked.
func (j *JWT) GetClaimsUnverifiedExpiry(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parse(tokenString, jwt.WithoutClaimsValidation())
}

func (j *JWT) parse(tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithTimeFunc(j.now))
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedAlg
		}
		return []byte(j.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == uuid.Nil || claims.UserID == 0 {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}
