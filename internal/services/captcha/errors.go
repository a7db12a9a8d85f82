package captcha

// Error is a CAPTCHA verification error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnavailable   Error = "captcha verifier unavailable"
	ErrNilConfig     Error = "config cannot be nil"
	ErrMissingSecret Error = "secret key is required"
)

// missingInputResponse is the error code reported for an absent token
const missingInputResponse = "missing-input-response"
