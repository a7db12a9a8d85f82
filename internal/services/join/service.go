package join

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/KirkDiggler/joingate/internal/common/ids"
	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/KirkDiggler/joingate/internal/repositories/session"
	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/services/captcha"
	"github.com/KirkDiggler/joingate/internal/services/oauth"
	"github.com/KirkDiggler/joingate/internal/tier"
	"github.com/sirupsen/logrus"
)

const (
	defaultCaptchaPage = "/captcha.html"
	defaultSessionTTL  = 7 * 24 * time.Hour
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo session.Repository
	oauth       oauth.Service
	captcha     captcha.Service
	auditor     audit.Recorder
	resolver    *tier.Resolver
	clock       clock.Clock
	ids         ids.Generator
}

// New creates a new join service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.OAuth == nil {
		return nil, ErrNilOAuth
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.PlaceID == "" {
		return nil, ErrMissingPlaceID
	}

	if cfg.CaptchaPage == "" {
		cfg.CaptchaPage = defaultCaptchaPage
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	svc := &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		oauth:       cfg.OAuth,
		captcha:     cfg.Captcha,
		auditor:     cfg.Auditor,
		resolver:    cfg.Resolver,
		clock:       cfg.Clock,
		ids:         cfg.IDs,
	}

	if svc.clock == nil {
		svc.clock = clock.System{}
	}

	if svc.ids == nil {
		svc.ids = ids.New()
	}

	if svc.auditor == nil {
		svc.auditor = noopRecorder{}
	}

	return svc, nil
}

// Join handles the /join entry point
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || strings.TrimSpace(input.GameInstanceID) == "" {
		return nil, ErrMissingGameInstance
	}
	gameInstanceID := strings.TrimSpace(input.GameInstanceID)

	sess, err := s.loadOrCreate(ctx, input.SessionToken)
	if err != nil {
		return nil, err
	}
	sess.GameInstanceID = gameInstanceID

	output := &JoinOutput{}

	switch {
	case sess.IsAuthenticated():
		t := s.resolver.Resolve(sess.User.Roles)
		output.Tier = t
		output.RedirectURL = s.landingURL(sess, t)

	case s.captcha != nil:
		sess.Stage = models.AuthStagePendingCaptcha
		sess.OAuthState = ""
		output.RedirectURL = s.captchaURL(gameInstanceID)

	default:
		sess.Stage = models.AuthStagePendingOAuth
		sess.OAuthState = s.ids.NewState()
		output.RedirectURL = s.oauth.AuthCodeURL(sess.OAuthState)
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	output.SessionToken = sess.Token
	output.Stage = sess.Stage

	return output, nil
}

// VerifyCaptcha checks the CAPTCHA answer for a session waiting on it
func (s *service) VerifyCaptcha(ctx context.Context, input *VerifyCaptchaInput) (*VerifyCaptchaOutput, error) {
	if s.captcha == nil {
		return nil, ErrCaptchaDisabled
	}

	if input == nil || strings.TrimSpace(input.Response) == "" {
		return nil, ErrMissingCaptchaResponse
	}

	sess, err := s.loadExisting(ctx, input.SessionToken)
	if err != nil {
		return nil, err
	}

	if sess.Stage != models.AuthStagePendingCaptcha || sess.GameInstanceID == "" {
		return nil, ErrInvalidFlowState
	}

	verdict, err := s.captcha.Verify(ctx, &captcha.VerifyInput{
		Token:    input.Response,
		RemoteIP: input.RemoteIP,
	})
	if err != nil {
		return nil, err
	}

	if !verdict.Success {
		// a failed challenge ends this attempt, the next try starts at /join
		sess.Stage = models.AuthStageAnonymous
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s", ErrCaptchaRejected, strings.Join(verdict.ErrorCodes, ","))
	}

	sess.Stage = models.AuthStagePendingOAuth
	sess.OAuthState = s.ids.NewState()

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &VerifyCaptchaOutput{
		SessionToken: sess.Token,
		RedirectURL:  s.oauth.AuthCodeURL(sess.OAuthState),
	}, nil
}

// Callback exchanges the code, stores the identity and picks the landing page
func (s *service) Callback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error) {
	if input == nil {
		return nil, ErrInvalidFlowState
	}

	sess, err := s.loadExisting(ctx, input.SessionToken)
	if err != nil {
		return nil, err
	}

	if sess.GameInstanceID == "" || sess.Stage != models.AuthStagePendingOAuth {
		return nil, ErrInvalidFlowState
	}

	if sess.OAuthState != "" && input.State != sess.OAuthState {
		return nil, fmt.Errorf("%w: state mismatch", ErrInvalidFlowState)
	}

	if input.Code == "" {
		return nil, ErrMissingCode
	}

	exchange, err := s.oauth.ExchangeCode(ctx, &oauth.ExchangeCodeInput{
		Code:        input.Code,
		RedirectURI: s.config.RedirectURI,
	})
	if err != nil {
		return nil, err
	}

	member, err := s.oauth.FetchMemberRoles(ctx, &oauth.FetchMemberRolesInput{
		AccessToken: exchange.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	// a fresh token on login keeps a pre-login cookie from riding the new identity
	previousToken := sess.Token
	sess.Token = s.ids.NewSessionToken()
	sess.User = member.Identity
	sess.Stage = models.AuthStageAuthenticated
	sess.OAuthState = ""

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.DeleteSession(ctx, &session.DeleteSessionInput{Token: previousToken}); err != nil {
		logrus.WithError(err).Warn("failed to delete pre-login session")
	}

	t := s.resolver.Resolve(sess.User.Roles)

	s.auditor.Record(ctx, &audit.Event{
		Type:           audit.EventWebLogin,
		TargetUserID:   sess.User.ID,
		TargetUsername: sess.User.Username,
		Details: map[string]string{
			"tier":             string(t),
			"game_instance_id": sess.GameInstanceID,
		},
	})

	return &CallbackOutput{
		SessionToken: sess.Token,
		RedirectURL:  s.landingURL(sess, t),
		Tier:         t,
		Identity:     sess.User,
	}, nil
}

// Logout deletes the session behind the token
func (s *service) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if input == nil || input.SessionToken == "" {
		return &LogoutOutput{}, nil
	}

	sess, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Token: input.SessionToken})
	if err != nil && !isMissing(err) {
		return nil, err
	}

	if _, err := s.sessionRepo.DeleteSession(ctx, &session.DeleteSessionInput{Token: input.SessionToken}); err != nil {
		return nil, err
	}

	if !sess.IsAuthenticated() {
		return &LogoutOutput{}, nil
	}

	s.auditor.Record(ctx, &audit.Event{
		Type:           audit.EventLogout,
		TargetUserID:   sess.User.ID,
		TargetUsername: sess.User.Username,
	})

	return &LogoutOutput{
		WasAuthenticated: true,
	}, nil
}

// SiteKey returns the public CAPTCHA key
func (s *service) SiteKey(_ context.Context) (*SiteKeyOutput, error) {
	if s.captcha == nil {
		return nil, ErrCaptchaDisabled
	}

	return &SiteKeyOutput{
		SiteKey: s.config.CaptchaSiteKey,
	}, nil
}

// loadOrCreate returns the session for token, or a new anonymous one when
// the token is empty, unknown or corrupt. Store errors are returned as is.
func (s *service) loadOrCreate(ctx context.Context, token string) (*models.Session, error) {
	if token != "" {
		sess, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Token: token})
		if err == nil {
			return sess, nil
		}
		if !isMissing(err) {
			return nil, err
		}
	}

	now := s.clock.Now()
	return &models.Session{
		Token:     s.ids.NewSessionToken(),
		Stage:     models.AuthStageAnonymous,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// loadExisting returns the session for token or ErrInvalidFlowState when
// there is none
func (s *service) loadExisting(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidFlowState
	}

	sess, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Token: token})
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFlowState, err)
		}
		return nil, err
	}

	return sess, nil
}

func (s *service) save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{
		Session: sess,
		TTL:     s.config.SessionTTL,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// landingURL picks the game launch link for bypass holders and the tier
// page for everyone else. Denied users never get the launch link.
func (s *service) landingURL(sess *models.Session, t models.Tier) string {
	query := url.Values{}
	query.Set("id", sess.GameInstanceID)
	query.Set("placeId", s.config.PlaceID)

	if !t.IsDenied() && s.config.LaunchURL != "" && sess.User.HasRole(s.config.BypassRoleID) {
		return withQuery(s.config.LaunchURL, query)
	}

	return withQuery("/"+t.Page(), query)
}

func (s *service) captchaURL(gameInstanceID string) string {
	query := url.Values{}
	query.Set("id", gameInstanceID)
	return withQuery(s.config.CaptchaPage, query)
}

func withQuery(base string, query url.Values) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + query.Encode()
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *audit.Event) {}

func isMissing(err error) bool {
	return errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionCorrupt)
}
