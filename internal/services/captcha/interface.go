package captcha

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/joingate/internal/services/captcha Service

// Service verifies CAPTCHA challenge tokens
type Service interface {
	// Verify checks a challenge token with the remote verifier. A missing
	// token fails without a network call. ErrUnavailable means the verifier
	// could not be asked, not that the challenge failed.
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
}
