package models

// Event types published to the audit stream
const (
	EventUserRegistered = "user_registered"
	EventUserUpdated    = "user_updated"
	EventUserDeleted    = "user_deleted"
	EventLogin          = "login"
	EventLogout         = "logout"
	EventBookAdded      = "book_added"
	EventBookUpdated    = "book_updated"
	EventBookRemoved    = "book_removed"
)

// Event represents an audit record published to Kafka
type Event struct {
	EventID   string `json:"event_id"`          // Unique event identifier
	Type      string `json:"type"`              // One of the Event* constants
	ActorID   int64  `json:"actor_id"`          // User performing the action, 0 for anonymous
	UserID    int64  `json:"user_id,omitempty"` // Affected user
	BookID    int64  `json:"book_id,omitempty"` // Affected book
	Timestamp int64  `json:"timestamp"`         // Unix timestamp
}
