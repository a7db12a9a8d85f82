package session

import (
	"time"

	"github.com/KirkDiggler/joingate/internal/models"
)

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	Token string
}

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session

	// TTL overrides the repository default when positive
	TTL time.Duration
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	Token string
}

// DeleteSessionOutput contains the result of deleting a session
type DeleteSessionOutput struct {
	// Deleted is false when there was nothing to delete
	Deleted bool
}

// ScanSessionsInput contains parameters for scanning sessions
type ScanSessionsInput struct {
	// Pattern is a glob matched against session tokens, "*" when empty
	Pattern string
}
