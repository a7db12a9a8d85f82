package join

// Error is a login flow error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrMissingGameInstance    Error = "game instance id is missing"
	ErrMissingCode            Error = "authorization code is missing"
	ErrMissingCaptchaResponse Error = "captcha response is missing"
	ErrInvalidFlowState       Error = "session is not in the expected login state"
	ErrCaptchaRejected        Error = "captcha verification failed"
	ErrCaptchaDisabled        Error = "captcha is not enabled"

	ErrNilConfig      Error = "config cannot be nil"
	ErrNilSessionRepo Error = "session repository cannot be nil"
	ErrNilOAuth       Error = "oauth service cannot be nil"
	ErrNilResolver    Error = "tier resolver cannot be nil"
	ErrMissingPlaceID Error = "place ID is required"
)
