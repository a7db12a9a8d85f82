package join

import (
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/KirkDiggler/joingate/internal/common/ids"
	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/KirkDiggler/joingate/internal/repositories/session"
	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/services/captcha"
	"github.com/KirkDiggler/joingate/internal/services/oauth"
	"github.com/KirkDiggler/joingate/internal/tier"
)

// Config holds configuration for the join service
type Config struct {
	// PlaceID is appended to every landing redirect as placeId
	PlaceID string

	// LaunchURL is the game deep link used for bypass role holders
	LaunchURL string

	// BypassRoleID skips the landing page when held, optional
	BypassRoleID string

	// CaptchaPage is where anonymous users solve the CAPTCHA
	CaptchaPage string

	// CaptchaSiteKey is the public hCaptcha key
	CaptchaSiteKey string

	// RedirectURI is sent with the code exchange
	RedirectURI string

	// SessionTTL is the sliding inactivity window
	SessionTTL time.Duration

	// Repository dependencies
	SessionRepo session.Repository

	// Service dependencies, Captcha is nil when the deployment has no CAPTCHA
	OAuth    oauth.Service
	Captcha  captcha.Service
	Auditor  audit.Recorder
	Resolver *tier.Resolver

	Clock clock.Clock
	IDs   ids.Generator
}

// JoinInput contains parameters for the /join entry point
type JoinInput struct {
	// SessionToken is the token from the browser cookie, empty if none
	SessionToken string

	// GameInstanceID is the id query parameter
	GameInstanceID string
}

// JoinOutput contains where to send the browser
type JoinOutput struct {
	// SessionToken is the token to set on the cookie
	SessionToken string

	RedirectURL string

	// Stage is the session stage after the request
	Stage models.AuthStage

	// Tier is set when the session was already authenticated
	Tier models.Tier
}

// VerifyCaptchaInput contains parameters for checking a CAPTCHA answer
type VerifyCaptchaInput struct {
	SessionToken string

	// Response is the h-captcha-response form value
	Response string

	RemoteIP string
}

// VerifyCaptchaOutput contains the provider authorize redirect
type VerifyCaptchaOutput struct {
	SessionToken string
	RedirectURL  string
}

// CallbackInput contains parameters from the OAuth redirect
type CallbackInput struct {
	SessionToken string
	Code         string
	State        string
}

// CallbackOutput contains the landing redirect for the authenticated user
type CallbackOutput struct {
	// SessionToken is rotated on login
	SessionToken string

	RedirectURL string
	Tier        models.Tier
	Identity    *models.Identity
}

// LogoutInput contains parameters for destroying a session
type LogoutInput struct {
	SessionToken string
}

// LogoutOutput contains the result of a logout
type LogoutOutput struct {
	// WasAuthenticated is true if an identity was removed
	WasAuthenticated bool
}

// SiteKeyOutput contains the public CAPTCHA key
type SiteKeyOutput struct {
	SiteKey string
}
