package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/joingate/internal/config"
	"github.com/KirkDiggler/joingate/internal/handlers/discord"
	"github.com/KirkDiggler/joingate/internal/handlers/web"
	"github.com/KirkDiggler/joingate/internal/repositories/session"
	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/services/captcha"
	"github.com/KirkDiggler/joingate/internal/services/join"
	"github.com/KirkDiggler/joingate/internal/services/moderation"
	"github.com/KirkDiggler/joingate/internal/services/oauth"
	"github.com/KirkDiggler/joingate/internal/tier"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := newLogger(cfg)

	// Initialize Redis client
	redisClient, err := newRedisClient(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
		DefaultTTL:  cfg.SessionTTL,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create session repository")
	}

	auditor := audit.New(&audit.Config{
		QueueSize:       cfg.AuditQueueSize,
		DeliveryTimeout: cfg.OutboundTimeout,
		Logger:          log.WithField("component", "audit"),
	})
	defer auditor.Close()

	resolver := tier.New(tier.Roles{
		Donator:   cfg.DonatorRoleID,
		Booster:   cfg.BoosterRoleID,
		Level15:   cfg.Level15RoleID,
		Member:    cfg.MemberRoleID,
		Blacklist: cfg.BlacklistedRoleID,
	})

	oauthSvc, err := oauth.New(&oauth.Config{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURL:  cfg.CallbackURL(),
		GuildID:      cfg.DiscordGuildID,
		APIURL:       cfg.DiscordAPIURL,
		Timeout:      cfg.OutboundTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create OAuth service")
	}

	var verifier captcha.Service
	if cfg.CaptchaEnabled() {
		verifier, err = captcha.New(&captcha.Config{
			SiteKey:   cfg.HCaptchaSiteKey,
			SecretKey: cfg.HCaptchaSecretKey,
			VerifyURL: cfg.HCaptchaVerifyURL,
			Timeout:   cfg.OutboundTimeout,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create CAPTCHA service")
		}
	}

	joinSvc, err := join.New(&join.Config{
		PlaceID:        cfg.RobloxPlaceID,
		LaunchURL:      cfg.GameLaunchURL,
		BypassRoleID:   cfg.BypassRoleID,
		CaptchaSiteKey: cfg.HCaptchaSiteKey,
		RedirectURI:    cfg.CallbackURL(),
		SessionTTL:     cfg.SessionTTL,
		SessionRepo:    sessionRepo,
		OAuth:          oauthSvc,
		Captcha:        verifier,
		Auditor:        auditor,
		Resolver:       resolver,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create join service")
	}

	server, err := web.New(&web.Config{
		Addr:            ":" + cfg.Port,
		SessionSecret:   cfg.SessionSecret,
		SessionTTL:      cfg.SessionTTL,
		StaticDir:       cfg.StaticDir,
		MaintenanceMode: cfg.MaintenanceMode,
		Join:            joinSvc,
		Health:          sessionRepo,
		Logger:          log.WithField("component", "web"),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create web server")
	}

	var bot *discord.Bot
	if cfg.BotEnabled {
		bot = startBot(cfg, log, sessionRepo, auditor, resolver)
	} else {
		log.Warn("Discord bot disabled, audit events go to the log only")
		auditor.Ready(audit.Discard{})
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	log.WithFields(logrus.Fields{
		"captcha":     cfg.CaptchaEnabled(),
		"status_role": cfg.StatusRoleEnabled(),
		"bot":         cfg.BotEnabled,
		"maintenance": cfg.MaintenanceMode,
	}).Info("Gateway started")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sc:
		log.WithField("signal", sig.String()).Info("Shutting down")
	case err := <-serverErr:
		if err != nil {
			log.WithError(err).Error("Web server stopped")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Error stopping web server")
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.WithError(err).Error("Error stopping bot")
		}
	}

	log.Info("Gateway has been shut down")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()

	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func newRedisClient(redisURL string) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	options.DialTimeout = 3 * time.Second
	options.ReadTimeout = 2 * time.Second
	options.WriteTimeout = 2 * time.Second

	client := redis.NewClient(options)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

func startBot(cfg *config.Config, log *logrus.Logger, sessionRepo session.Repository, auditor *audit.Dispatcher, resolver *tier.Resolver) *discord.Bot {
	dg, err := discord.NewSession(cfg.DiscordBotToken)
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord session")
	}
	dg.Client.Timeout = cfg.OutboundTimeout

	moderationSvc, err := moderation.New(&moderation.Config{
		AdminUserIDs:       cfg.AdminUserIDs,
		AdminUsernames:     cfg.AdminUsernames,
		ForceStatusRoleIDs: cfg.ForceStatusRoleIDs,
		RequiredStatusText: cfg.RequiredStatusText,
		StatusRoleID:       cfg.StatusRoleID,
		LogoutURL:          cfg.AppURL + "/logout",
		Guild:              discord.NewGuild(dg, cfg.DiscordGuildID),
		SessionRepo:        sessionRepo,
		Auditor:            auditor,
		Resolver:           resolver,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create moderation service")
	}

	bot, err := discord.New(&discord.Config{
		Session:            dg,
		ApplicationID:      cfg.DiscordClientID,
		GuildID:            cfg.DiscordGuildID,
		GhostPingChannelID: cfg.GhostPingChannelID,
		LogChannelID:       cfg.LogChannelID,
		Moderation:         moderationSvc,
		Audit:              auditor,
		Logger:             log.WithField("component", "discord"),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start Discord bot")
	}

	return bot
}
