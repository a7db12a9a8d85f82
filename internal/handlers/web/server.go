package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/KirkDiggler/joingate/internal/services/join"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddr       = ":3000"
	defaultSessionTTL = 7 * 24 * time.Hour
	minSecretLength   = 16
)

// HealthChecker reports whether the session store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Config holds configuration for the web server
type Config struct {
	// Addr is the listen address, ":3000" when empty
	Addr string

	// SessionSecret signs the session cookie
	SessionSecret string
	SessionTTL    time.Duration

	// StaticDir is served at / when set
	StaticDir string

	// MaintenanceMode answers 503 on the login flow routes
	MaintenanceMode bool

	Join   join.Service
	Health HealthChecker

	Clock  clock.Clock
	Logger logrus.FieldLogger
}

// Server is the browser facing HTTP gateway
type Server struct {
	join       join.Service
	health     HealthChecker
	cookies    *cookieCodec
	log        logrus.FieldLogger
	router     chi.Router
	httpServer *http.Server
}

// New builds the router and wraps it in an http.Server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Join == nil {
		return nil, ErrNilJoinService
	}

	if cfg.Health == nil {
		return nil, ErrNilHealth
	}

	if len(cfg.SessionSecret) < minSecretLength {
		return nil, ErrWeakSecret
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	var clk clock.Clock = clock.System{}
	if cfg.Clock != nil {
		clk = cfg.Clock
	}

	var log logrus.FieldLogger = logrus.StandardLogger()
	if cfg.Logger != nil {
		log = cfg.Logger
	}

	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}

	s := &Server{
		join:    cfg.Join,
		health:  cfg.Health,
		cookies: newCookieCodec(cfg.SessionSecret, ttl, clk),
		log:     log,
	}

	s.router = s.routes(cfg)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(accessLog(s.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/logout", s.handleLogout)
	r.Get("/hcaptcha-sitekey", s.handleSiteKey)

	r.Group(func(r chi.Router) {
		r.Use(maintenance(cfg.MaintenanceMode))
		r.Get("/join", s.handleJoin)
		r.Post("/verify-captcha", s.handleVerifyCaptcha)
		r.Get("/callback", s.handleCallback)
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}

// ListenAndServe blocks until the server stops. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.httpServer.Addr).Info("web server listening")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown waits for in-flight requests until ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
