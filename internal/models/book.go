package models

import "time"

// BookDB represents a book row in the database.
// Image is only populated by single-row lookups; listings fill HasImage instead.
type BookDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Required title
	Image     []byte    `json:"-" db:"image"`               // Optional image payload
	HasImage  bool      `json:"has_image" db:"has_image"`   // Whether an image is stored
	OwnerID   int64     `json:"owner_id" db:"owner_id"`     // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// BookUpdate holds the optional fields of a book edit. Nil means unchanged.
type BookUpdate struct {
	Title *string
	Image []byte
}
