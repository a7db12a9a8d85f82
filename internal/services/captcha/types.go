package captcha

import (
	"net/http"
	"time"
)

// Config holds configuration for the hCaptcha service
type Config struct {
	SiteKey   string
	SecretKey string

	// VerifyURL is the siteverify endpoint
	VerifyURL string

	// Timeout bounds each verify call when HTTPClient is nil
	Timeout time.Duration

	HTTPClient *http.Client
}

// VerifyInput contains parameters for verifying a challenge
type VerifyInput struct {
	// Token is the h-captcha-response value posted by the browser
	Token string

	// RemoteIP is the caller's address, optional
	RemoteIP string
}

// VerifyOutput contains the verifier's verdict
type VerifyOutput struct {
	Success    bool
	ErrorCodes []string
}

// siteverifyResponse is the body returned by hCaptcha
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}
