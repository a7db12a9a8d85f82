package session

// Error is a session store error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrSessionNotFound  Error = "session not found"
	ErrSessionCorrupt   Error = "session document is corrupt"
	ErrStoreUnavailable Error = "session store unavailable"
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilRedisClient   Error = "redis client cannot be nil"
	ErrInvalidTTL       Error = "session TTL must be positive"
	ErrEmptyToken       Error = "session token cannot be empty"
)
