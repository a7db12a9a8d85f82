package web

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/joingate/internal/services/captcha"
	"github.com/KirkDiggler/joingate/internal/services/join"
)

// Error is a web server error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilConfig      Error = "config cannot be nil"
	ErrNilJoinService Error = "join service cannot be nil"
	ErrNilHealth      Error = "health check cannot be nil"
	ErrWeakSecret     Error = "session secret must be at least 16 bytes"
	ErrInvalidCookie  Error = "invalid session cookie"
)

const genericFailure = "Something went wrong. Please try again later."

// statusFor maps a join error to a status code and a user facing message
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, join.ErrMissingGameInstance):
		return http.StatusBadRequest, "Missing game instance id."
	case errors.Is(err, join.ErrMissingCode):
		return http.StatusBadRequest, "Missing authorization code."
	case errors.Is(err, join.ErrMissingCaptchaResponse):
		return http.StatusBadRequest, "Please complete the CAPTCHA."
	case errors.Is(err, join.ErrInvalidFlowState):
		return http.StatusBadRequest, "Your login session is invalid or has expired. Please join again from the game."
	case errors.Is(err, join.ErrCaptchaRejected):
		return http.StatusForbidden, "CAPTCHA verification failed. Please try again."
	case errors.Is(err, join.ErrCaptchaDisabled):
		return http.StatusNotFound, http.StatusText(http.StatusNotFound)
	case errors.Is(err, captcha.ErrUnavailable):
		return http.StatusInternalServerError, "CAPTCHA verification is unavailable right now. Please try again later."
	default:
		return http.StatusInternalServerError, genericFailure
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)

	entry := s.log.WithError(err).WithField("path", r.URL.Path)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Info("request rejected")
	}

	http.Error(w, message, status)
}
