package session

import (
	"context"
	"iter"

	"github.com/KirkDiggler/joingate/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/joingate/internal/repositories/session Repository

// Repository defines persistence for browser sessions
type Repository interface {
	// GetSession retrieves a session by token, ErrSessionNotFound if absent
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// SaveSession writes a session and resets its expiry
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// ScanSessions lazily walks every session whose token matches a pattern.
	// It costs O(total sessions) and is meant for admin actions only.
	ScanSessions(ctx context.Context, input *ScanSessionsInput) iter.Seq2[*models.Session, error]

	// Ping checks the store is reachable
	Ping(ctx context.Context) error
}
