package model

// Identity lifecycle notifications pushed by the external identity provider.
const (
	EventUserCreated    = "user.created"
	EventUserUpdated    = "user.updated"
	EventSessionCreated = "session.created"
	EventUserDeleted    = "user.deleted"
)

type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

type IdentityEventData struct {
	// ID is the external identity id for user.* events.
	ID string `json:"id"`
	// UserID is what session.created carries instead of ID.
	UserID   string  `json:"user_id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
}
