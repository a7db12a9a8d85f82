package oauth

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/joingate/internal/services/oauth Service

// Service defines the Discord OAuth2 operations used by the login flow
type Service interface {
	// AuthCodeURL returns the provider authorize URL carrying state
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for an access token
	ExchangeCode(ctx context.Context, input *ExchangeCodeInput) (*ExchangeCodeOutput, error)

	// FetchMemberRoles reads the caller's guild membership
	FetchMemberRoles(ctx context.Context, input *FetchMemberRolesInput) (*FetchMemberRolesOutput, error)
}
