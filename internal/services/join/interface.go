package join

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/joingate/internal/services/join Service

// Service drives a browser session through the login flow
type Service interface {
	// Join records the requested game instance and decides where to send
	// the browser next
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// VerifyCaptcha checks the CAPTCHA answer and moves on to OAuth
	VerifyCaptcha(ctx context.Context, input *VerifyCaptchaInput) (*VerifyCaptchaOutput, error)

	// Callback completes the OAuth round trip and resolves the tier
	Callback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error)

	// Logout destroys the session
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// SiteKey returns the public CAPTCHA site key
	SiteKey(ctx context.Context) (*SiteKeyOutput, error)
}
