package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"
)

const (
	defaultAPIURL  = "https://discord.com/api"
	defaultTimeout = 5 * time.Second
)

var defaultScopes = []string{"identify", "guilds.members.read"}

// service implements the Service interface against Discord
type service struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	guildID     string
}

// New creates a new Discord OAuth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingClient
	}

	if cfg.GuildID == "" {
		return nil, ErrMissingGuild
	}

	if cfg.RedirectURL == "" {
		return nil, ErrMissingRedirect
	}

	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &service{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   apiURL + "/oauth2/authorize",
				TokenURL:  apiURL + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
		guildID:    cfg.GuildID,
	}, nil
}

// AuthCodeURL returns the Discord authorize URL
func (s *service) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// clientContext makes the oauth2 package use our bounded client
func (s *service) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

// ExchangeCode trades an authorization code for an access token
func (s *service) ExchangeCode(ctx context.Context, input *ExchangeCodeInput) (*ExchangeCodeOutput, error) {
	if input == nil || input.Code == "" {
		return nil, fmt.Errorf("%w: code is empty", ErrTokenExchange)
	}

	var opts []oauth2.AuthCodeOption
	if input.RedirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", input.RedirectURI))
	}

	token, err := s.oauthConfig.Exchange(s.clientContext(ctx), input.Code, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: response has no access token", ErrTokenExchange)
	}

	return &ExchangeCodeOutput{
		AccessToken: token.AccessToken,
	}, nil
}

// FetchMemberRoles reads the caller's membership in the configured guild
// using their access token
func (s *service) FetchMemberRoles(ctx context.Context, input *FetchMemberRolesInput) (*FetchMemberRolesOutput, error) {
	if input == nil || input.AccessToken == "" {
		return nil, fmt.Errorf("%w: access token is empty", ErrIdentityFetch)
	}

	dg, err := s.userSession(input.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityFetch, err)
	}

	member, err := dg.UserGuildMember(s.guildID, discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil {
			return nil, fmt.Errorf("%w: discord returned %d: %s", ErrIdentityFetch, restErr.Response.StatusCode, string(restErr.ResponseBody))
		}
		return nil, fmt.Errorf("%w: %v", ErrIdentityFetch, err)
	}

	if member == nil || member.User == nil || member.User.ID == "" {
		return nil, fmt.Errorf("%w: member has no user", ErrIdentityFetch)
	}

	roles := member.Roles
	if roles == nil {
		roles = []string{}
	}

	return &FetchMemberRolesOutput{
		Identity: &models.Identity{
			ID:       member.User.ID,
			Username: member.User.Username,
			Roles:    roles,
		},
	}, nil
}

// userSession builds a REST-only session authenticated as the user
func (s *service) userSession(accessToken string) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, err
	}

	dg.Client = s.httpClient
	dg.StateEnabled = false
	dg.MaxRestRetries = 0
	dg.ShouldRetryOnRateLimit = false

	return dg, nil
}
