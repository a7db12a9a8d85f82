package moderation

// Error is a moderation error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrPermissionDenied     Error = "permission denied"
	ErrTargetNotFound       Error = "target user not found in guild"
	ErrMissingTarget        Error = "target user is required"
	ErrNilConfig            Error = "config cannot be nil"
	ErrNilGuild             Error = "guild cannot be nil"
	ErrNilSessionRepo       Error = "session repository cannot be nil"
	ErrNilResolver          Error = "tier resolver cannot be nil"
	ErrMissingBlacklistRole Error = "blacklist role is required"
)
