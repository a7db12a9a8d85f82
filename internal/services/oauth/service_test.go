package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

// apiTransport sends every request, including discordgo's fixed API
// endpoints, to the test server
type apiTransport struct {
	target *url.URL
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(out)
}

func newTestClient(serverURL string) *http.Client {
	target, _ := url.Parse(serverURL)
	return &http.Client{Transport: &apiTransport{target: target}}
}

// memberPath is the request path discordgo uses for the member endpoint
func memberPath(guildID string) string {
	u, _ := url.Parse(discordgo.EndpointUserGuildMember("@me", guildID))
	return u.Path
}

type OAuthServiceTestSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	service Service
	ctx     context.Context
}

func (s *OAuthServiceTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	svc, err := New(&Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://gate.example.com/callback",
		GuildID:      "guild-1",
		APIURL:       s.server.URL,
		HTTPClient:   newTestClient(s.server.URL),
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *OAuthServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestOAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthServiceTestSuite))
}

func (s *OAuthServiceTestSuite) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.Require().NoError(json.NewEncoder(w).Encode(body))
}

func (s *OAuthServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{ClientID: "id"})
	s.ErrorIs(err, ErrMissingClient)

	_, err = New(&Config{ClientID: "id", ClientSecret: "secret", RedirectURL: "x"})
	s.ErrorIs(err, ErrMissingGuild)

	_, err = New(&Config{ClientID: "id", ClientSecret: "secret", GuildID: "g"})
	s.ErrorIs(err, ErrMissingRedirect)
}

func (s *OAuthServiceTestSuite) TestAuthCodeURL() {
	raw := s.service.AuthCodeURL("state-123")

	u, err := url.Parse(raw)
	s.Require().NoError(err)
	s.Equal("/oauth2/authorize", u.Path)

	q := u.Query()
	s.Equal("client-id", q.Get("client_id"))
	s.Equal("https://gate.example.com/callback", q.Get("redirect_uri"))
	s.Equal("code", q.Get("response_type"))
	s.Equal("identify guilds.members.read", q.Get("scope"))
	s.Equal("state-123", q.Get("state"))
}

func (s *OAuthServiceTestSuite) TestExchangeCode() {
	s.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Require().NoError(r.ParseForm())
		s.Equal("authorization_code", r.PostForm.Get("grant_type"))
		s.Equal("abc", r.PostForm.Get("code"))
		s.Equal("client-id", r.PostForm.Get("client_id"))
		s.Equal("client-secret", r.PostForm.Get("client_secret"))
		s.Equal("https://gate.example.com/callback", r.PostForm.Get("redirect_uri"))

		s.writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "access-1",
			"token_type":   "Bearer",
			"expires_in":   604800,
		})
	})

	out, err := s.service.ExchangeCode(s.ctx, &ExchangeCodeInput{Code: "abc"})
	s.Require().NoError(err)
	s.Equal("access-1", out.AccessToken)
}

func (s *OAuthServiceTestSuite) TestExchangeCodeRedirectOverride() {
	s.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseForm())
		s.Equal("https://other.example.com/callback", r.PostForm.Get("redirect_uri"))
		s.writeJSON(w, http.StatusOK, map[string]any{"access_token": "access-2", "token_type": "Bearer"})
	})

	out, err := s.service.ExchangeCode(s.ctx, &ExchangeCodeInput{
		Code:        "abc",
		RedirectURI: "https://other.example.com/callback",
	})
	s.Require().NoError(err)
	s.Equal("access-2", out.AccessToken)
}

func (s *OAuthServiceTestSuite) TestExchangeCodeProviderError() {
	s.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid_grant"})
	})

	_, err := s.service.ExchangeCode(s.ctx, &ExchangeCodeInput{Code: "expired"})
	s.ErrorIs(err, ErrTokenExchange)
}

func (s *OAuthServiceTestSuite) TestExchangeCodeMissingToken() {
	s.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"token_type": "Bearer"})
	})

	_, err := s.service.ExchangeCode(s.ctx, &ExchangeCodeInput{Code: "abc"})
	s.ErrorIs(err, ErrTokenExchange)
}

func (s *OAuthServiceTestSuite) TestExchangeCodeEmpty() {
	_, err := s.service.ExchangeCode(s.ctx, &ExchangeCodeInput{})
	s.ErrorIs(err, ErrTokenExchange)
}

func (s *OAuthServiceTestSuite) TestFetchMemberRoles() {
	s.mux.HandleFunc(memberPath("guild-1"), func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer access-1", r.Header.Get("Authorization"))
		s.writeJSON(w, http.StatusOK, map[string]any{
			"user":  map[string]any{"id": "42", "username": "ronnie"},
			"nick":  "Ron",
			"roles": []string{"member", "level15"},
		})
	})

	out, err := s.service.FetchMemberRoles(s.ctx, &FetchMemberRolesInput{AccessToken: "access-1"})
	s.Require().NoError(err)
	s.Equal("42", out.Identity.ID)
	s.Equal("ronnie", out.Identity.Username)
	s.Equal([]string{"member", "level15"}, out.Identity.Roles)
}

func (s *OAuthServiceTestSuite) TestFetchMemberRolesNoRoles() {
	s.mux.HandleFunc(memberPath("guild-1"), func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"user": map[string]any{"id": "42", "username": "ronnie"},
		})
	})

	out, err := s.service.FetchMemberRoles(s.ctx, &FetchMemberRolesInput{AccessToken: "access-1"})
	s.Require().NoError(err)
	s.NotNil(out.Identity.Roles)
	s.Empty(out.Identity.Roles)
}

func (s *OAuthServiceTestSuite) TestFetchMemberRolesFailures() {
	cases := map[string]http.HandlerFunc{
		"not a member": func(w http.ResponseWriter, r *http.Request) {
			s.writeJSON(w, http.StatusNotFound, map[string]any{"message": "Unknown Guild", "code": 10004})
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>"))
		},
		"missing user": func(w http.ResponseWriter, r *http.Request) {
			s.writeJSON(w, http.StatusOK, map[string]any{"roles": []string{"member"}})
		},
	}

	for name, handler := range cases {
		s.Run(name, func() {
			mux := http.NewServeMux()
			mux.HandleFunc(memberPath("guild-1"), handler)
			server := httptest.NewServer(mux)
			defer server.Close()

			svc, err := New(&Config{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
				RedirectURL:  "https://gate.example.com/callback",
				GuildID:      "guild-1",
				APIURL:       server.URL,
				HTTPClient:   newTestClient(server.URL),
			})
			s.Require().NoError(err)

			_, err = svc.FetchMemberRoles(s.ctx, &FetchMemberRolesInput{AccessToken: "access-1"})
			s.ErrorIs(err, ErrIdentityFetch)
		})
	}
}

func (s *OAuthServiceTestSuite) TestFetchMemberRolesReportsDiscordStatus() {
	s.mux.HandleFunc(memberPath("guild-1"), func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusForbidden, map[string]any{"message": "Missing Access", "code": 50001})
	})

	_, err := s.service.FetchMemberRoles(s.ctx, &FetchMemberRolesInput{AccessToken: "access-1"})
	s.ErrorIs(err, ErrIdentityFetch)
	s.Contains(err.Error(), "discord returned 403")
}

func (s *OAuthServiceTestSuite) TestFetchMemberRolesUnreachable() {
	s.server.Close()

	_, err := s.service.FetchMemberRoles(s.ctx, &FetchMemberRolesInput{AccessToken: "access-1"})
	s.ErrorIs(err, ErrIdentityFetch)
}
