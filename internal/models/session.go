package models

import (
	"time"
)

// AuthStage is the position of a browser session in the login flow
type AuthStage string

const (
	// AuthStageAnonymous is a session with no login in progress
	AuthStageAnonymous AuthStage = ""

	// AuthStagePendingCaptcha is waiting for the CAPTCHA challenge
	AuthStagePendingCaptcha AuthStage = "pending_captcha"

	// AuthStagePendingOAuth is waiting for the OAuth callback
	AuthStagePendingOAuth AuthStage = "pending_oauth"

	// AuthStageAuthenticated holds a verified Discord identity
	AuthStageAuthenticated AuthStage = "authenticated"
)

// Session is the server-side document behind a browser's session cookie
type Session struct {
	// Token is the opaque browser-held key, it is not serialized
	Token string `json:"-"`

	// GameInstanceID is the game server the user asked to join
	GameInstanceID string `json:"gameInstanceId,omitempty"`

	// Stage tracks progress through the login flow
	Stage AuthStage `json:"stage,omitempty"`

	// OAuthState is the state parameter sent with the authorize redirect
	OAuthState string `json:"oauthState,omitempty"`

	// User is set once the OAuth callback succeeds
	User *Identity `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is a snapshot of a guild member taken at login
type Identity struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// IsAuthenticated reports whether the session carries an identity
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil && s.User.ID != ""
}

// HasRole reports whether the identity snapshot includes roleID
func (i *Identity) HasRole(roleID string) bool {
	if i == nil || roleID == "" {
		return false
	}
	for _, r := range i.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
