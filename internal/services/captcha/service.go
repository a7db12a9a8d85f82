package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultVerifyURL = "https://api.hcaptcha.com/siteverify"
	defaultTimeout   = 5 * time.Second
	maxBodyBytes     = 64 << 10
)

// service implements the Service interface against hCaptcha
type service struct {
	siteKey    string
	secretKey  string
	verifyURL  string
	httpClient *http.Client
}

// New creates a new hCaptcha service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
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
		siteKey:    cfg.SiteKey,
		secretKey:  cfg.SecretKey,
		verifyURL:  verifyURL,
		httpClient: httpClient,
	}, nil
}

// Verify posts the token to siteverify
func (s *service) Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error) {
	if input == nil || strings.TrimSpace(input.Token) == "" {
		return &VerifyOutput{
			Success:    false,
			ErrorCodes: []string{missingInputResponse},
		}, nil
	}

	form := url.Values{}
	form.Set("secret", s.secretKey)
	form.Set("response", input.Token)
	if s.siteKey != "" {
		form.Set("sitekey", s.siteKey)
	}
	if input.RemoteIP != "" {
		form.Set("remoteip", input.RemoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: verifier returned %d", ErrUnavailable, resp.StatusCode)
	}

	var verdict siteverifyResponse
	if err := json.Unmarshal(body, &verdict); err != nil {
		return nil, fmt.Errorf("%w: decoding body: %v", ErrUnavailable, err)
	}

	return &VerifyOutput{
		Success:    verdict.Success,
		ErrorCodes: verdict.ErrorCodes,
	}, nil
}
