package oauth

// Error is an OAuth exchange error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrTokenExchange   Error = "token exchange failed"
	ErrIdentityFetch   Error = "identity fetch failed"
	ErrNilConfig       Error = "config cannot be nil"
	ErrMissingClient   Error = "client ID and secret are required"
	ErrMissingGuild    Error = "guild ID is required"
	ErrMissingRedirect Error = "redirect URL is required"
)
