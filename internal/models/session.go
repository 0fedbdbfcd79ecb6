package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the identity extracted from a valid session token.
// It deliberately carries no username or password hash.
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	UserID    int64     `json:"uid"`
	IsAdmin   bool      `json:"adm"`
	ExpiresAt time.Time `json:"exp"`
}
