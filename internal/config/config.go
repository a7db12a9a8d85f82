package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the gateway reads from the environment
type Config struct {
	// Web server
	Port            string `env:"PORT" envDefault:"3000"`
	Environment     string `env:"ENVIRONMENT" envDefault:"production"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir       string `env:"STATIC_DIR" envDefault:"./public"`
	MaintenanceMode bool   `env:"MAINTENANCE_MODE" envDefault:"false"`

	// Discord application and guild
	DiscordClientID     string `env:"DISCORD_CLIENT_ID,required,notEmpty"`
	DiscordClientSecret string `env:"DISCORD_CLIENT_SECRET,required,notEmpty"`
	DiscordGuildID      string `env:"DISCORD_GUILD_ID,required,notEmpty"`
	DiscordBotToken     string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	DiscordAPIURL       string `env:"DISCORD_API_URL" envDefault:"https://discord.com/api"`
	BotEnabled          bool   `env:"BOT_ENABLED" envDefault:"true"`

	// Game target
	RobloxPlaceID string `env:"ROBLOX_PLACE_ID,required,notEmpty"`
	GameLaunchURL string `env:"GAME_LAUNCH_URL" envDefault:"roblox://experiences/start"`

	// Tier roles
	DonatorRoleID     string `env:"DONATOR_ROLE_ID,required,notEmpty"`
	BoosterRoleID     string `env:"BOOSTER_ROLE_ID,required,notEmpty"`
	Level15RoleID     string `env:"LEVEL_15_ROLE_ID,required,notEmpty"`
	MemberRoleID      string `env:"MEMBER_ROLE_ID,required,notEmpty"`
	BlacklistedRoleID string `env:"BLACKLISTED_ROLE_ID,required,notEmpty"`
	BypassRoleID      string `env:"BYPASS_ROLE_ID"`

	// Sessions
	AppURL        string        `env:"APP_URL,required,notEmpty"`
	SessionSecret string        `env:"SESSION_SECRET,required,notEmpty"`
	RedisURL      string        `env:"REDIS_URL,required,notEmpty"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// Status role
	RequiredStatusText string   `env:"REQUIRED_STATUS_TEXT"`
	StatusRoleID       string   `env:"STATUS_ROLE_ID"`
	ForceStatusRoleIDs []string `env:"FORCE_STATUS_ROLE_IDS" envSeparator:","`
	GhostPingChannelID string   `env:"GHOST_PING_CHANNEL_ID"`

	// Moderation
	AdminUserIDs   []string `env:"ADMIN_USER_IDS" envSeparator:","`
	AdminUsernames []string `env:"ADMIN_USERNAMES" envSeparator:","`
	LogChannelID   string   `env:"LOG_CHANNEL_ID"`
	AuditQueueSize int      `env:"AUDIT_QUEUE_SIZE" envDefault:"100"`

	// hCaptcha
	HCaptchaSiteKey   string `env:"HCAPTCHA_SITE_KEY"`
	HCaptchaSecretKey string `env:"HCAPTCHA_SECRET_KEY"`
	HCaptchaVerifyURL string `env:"HCAPTCHA_VERIFY_URL" envDefault:"https://api.hcaptcha.com/siteverify"`

	// OutboundTimeout bounds every call to Discord and hCaptcha
	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"5s"`
}

// Load reads an optional .env file and then parses the environment.
// Start-up must abort when it returns an error.
func Load() (*Config, error) {
	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	u, err := url.Parse(c.AppURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("APP_URL must be an absolute http(s) URL, got %q", c.AppURL)
	}
	c.AppURL = strings.TrimRight(c.AppURL, "/")
	c.DiscordAPIURL = strings.TrimRight(c.DiscordAPIURL, "/")

	if len(c.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 characters")
	}

	if (c.HCaptchaSiteKey == "") != (c.HCaptchaSecretKey == "") {
		return errors.New("HCAPTCHA_SITE_KEY and HCAPTCHA_SECRET_KEY must be set together")
	}

	if (c.RequiredStatusText == "") != (c.StatusRoleID == "") {
		return errors.New("REQUIRED_STATUS_TEXT and STATUS_ROLE_ID must be set together")
	}

	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if c.OutboundTimeout <= 0 {
		return errors.New("OUTBOUND_TIMEOUT must be positive")
	}

	c.ForceStatusRoleIDs = compact(c.ForceStatusRoleIDs)
	c.AdminUserIDs = compact(c.AdminUserIDs)
	c.AdminUsernames = compact(c.AdminUsernames)

	return nil
}

// CallbackURL is the OAuth redirect URI registered with Discord
func (c *Config) CallbackURL() string {
	return c.AppURL + "/callback"
}

// CaptchaEnabled reports whether /join must pass hCaptcha first
func (c *Config) CaptchaEnabled() bool {
	return c.HCaptchaSecretKey != ""
}

// StatusRoleEnabled reports whether the status role feature is configured
func (c *Config) StatusRoleEnabled() bool {
	return c.StatusRoleID != "" && c.RequiredStatusText != ""
}

// IsDevelopment reports whether the gateway runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
