package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never rendered
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Role flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserUpdate holds the optional fields of a user edit. Nil means unchanged.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	IsAdmin      *bool
}
