package oauth

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/joingate/internal/models"
)

// Config holds configuration for the Discord OAuth service
type Config struct {
	ClientID     string
	ClientSecret string

	// RedirectURL is the registered callback URL
	RedirectURL string

	// GuildID is the guild whose membership is read
	GuildID string

	// APIURL is the Discord API base for the OAuth2 endpoints,
	// e.g. https://discord.com/api
	APIURL string

	// Scopes defaults to identify and guilds.members.read
	Scopes []string

	// Timeout bounds each outbound call when HTTPClient is nil
	Timeout time.Duration

	// HTTPClient overrides the client used for outbound calls
	HTTPClient *http.Client
}

// ExchangeCodeInput contains parameters for exchanging an authorization code
type ExchangeCodeInput struct {
	Code string

	// RedirectURI overrides the configured redirect URL when set
	RedirectURI string
}

// ExchangeCodeOutput contains the result of a code exchange
type ExchangeCodeOutput struct {
	AccessToken string
}

// FetchMemberRolesInput contains parameters for reading guild membership
type FetchMemberRolesInput struct {
	AccessToken string
}

// FetchMemberRolesOutput contains the caller's identity and roles
type FetchMemberRolesOutput struct {
	Identity *models.Identity
}
