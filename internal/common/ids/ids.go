package ids

import (
	"encoding/hex"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_ids.go github.com/KirkDiggler/joingate/internal/common/ids Generator

// Generator creates the opaque identifiers handed to browsers
type Generator interface {
	// NewSessionToken returns a key for a new session document
	NewSessionToken() string

	// NewState returns an OAuth state value
	NewState() string
}

// Random generates identifiers from random UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewSessionToken returns a random v4 UUID
func (r *Random) NewSessionToken() string {
	return uuid.NewString()
}

// NewState returns a random v4 UUID without hyphens
func (r *Random) NewState() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
