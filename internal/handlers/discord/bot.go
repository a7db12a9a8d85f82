package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/services/moderation"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// AuditReadier receives the log sink once the bot is connected
type AuditReadier interface {
	Ready(sink audit.Sink)
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	moderation moderation.Service
	audit      AuditReadier
	config     *Config
	log        logrus.FieldLogger

	mu        sync.Mutex
	readyOnce sync.Once
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session created with the bot token
	Session *discordgo.Session

	// Application ID for the bot, falls back to the logged in user
	ApplicationID string

	// GuildID is the guild commands are registered in
	GuildID string

	// GhostPingChannelID receives a deleted mention for each new member, optional
	GhostPingChannelID string

	// LogChannelID receives audit embeds, optional
	LogChannelID string

	Moderation moderation.Service

	// Audit is handed a sink on the first ready event, optional
	Audit AuditReadier

	Logger logrus.FieldLogger
}

// NewSession creates a discordgo session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences
	session.StateEnabled = true

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.Moderation == nil {
		return nil, errors.New("moderation service cannot be nil")
	}

	var log logrus.FieldLogger = logrus.StandardLogger()
	if cfg.Logger != nil {
		log = cfg.Logger
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		moderation: cfg.Moderation,
		audit:      cfg.Audit,
		config:     cfg,
		log:        log,
	}

	for _, cmd := range []CommandHandler{
		NewUpdateRolesCommand(cfg.Moderation),
		NewStatusRoleCommand(cfg.Moderation),
		NewForceStatusRoleCommand(cfg.Moderation),
		NewBlacklistCommand(cfg.Moderation),
		NewUnblacklistCommand(cfg.Moderation),
		NewUnverifyCommand(cfg.Moderation),
	} {
		bot.commands[cmd.GetName()] = cmd
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handlePresenceUpdate)
	cfg.Session.AddHandler(bot.handleGuildMemberAdd)

	return bot, nil
}

// Start opens the gateway connection. Commands are registered on ready.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.log.Info("bot connected to gateway")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.WithError(err).WithField("command", cmdName).Warn("failed to delete command")
			continue
		}
		b.log.WithField("command", cmdName).Debug("deleted command")
	}
	b.commandIDs = make(map[string]string)

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.mu.Lock()
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.mu.Unlock()

	b.log.WithFields(logrus.Fields{
		"command": cmd.GetName(),
		"id":      createdCmd.ID,
		"guild":   b.config.GuildID,
	}).Info("registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	if b.session.State != nil && b.session.State.User != nil {
		return b.session.State.User.ID
	}
	return ""
}

// handleReady registers commands and hands the log sink to the audit queue
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.WithField("user", r.User.Username).Info("bot ready")

	b.mu.Lock()
	cmds := make([]CommandHandler, 0, len(b.commands))
	for _, cmd := range b.commands {
		cmds = append(cmds, cmd)
	}
	b.mu.Unlock()

	for _, cmd := range cmds {
		if err := b.RegisterCommand(cmd); err != nil {
			b.log.WithError(err).Error("failed to register command")
		}
	}

	b.readyOnce.Do(func() {
		if b.audit == nil {
			return
		}

		var sink audit.Sink = audit.Discard{}
		if b.config.LogChannelID != "" {
			sink = NewLogSink(s, b.config.LogChannelID)
		}
		b.audit.Ready(sink)
	})
}

// handleInteraction dispatches slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name

	b.mu.Lock()
	h, ok := b.commands[name]
	b.mu.Unlock()
	if !ok {
		return
	}

	if err := h.Handle(s, i); err != nil {
		b.log.WithError(err).WithField("command", name).Error("error handling command")
	}
}

// handlePresenceUpdate re-evaluates the status role whenever a member's
// presence changes
func (b *Bot) handlePresenceUpdate(_ *discordgo.Session, p *discordgo.PresenceUpdate) {
	if p.GuildID != b.config.GuildID || p.User == nil || p.User.Bot {
		return
	}

	b.checkStatusRole(p.User.ID)
}

// handleGuildMemberAdd ghost pings the new member and checks the status role
func (b *Bot) handleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.GuildID != b.config.GuildID || m.User == nil || m.User.Bot {
		return
	}

	if b.config.GhostPingChannelID != "" {
		b.ghostPing(s, m.User.ID)
	}

	b.checkStatusRole(m.User.ID)
}

func (b *Bot) ghostPing(s *discordgo.Session, userID string) {
	msg, err := s.ChannelMessageSend(b.config.GhostPingChannelID, "<@"+userID+">")
	if err != nil {
		b.log.WithError(err).WithField("user_id", userID).Warn("ghost ping failed")
		return
	}

	if err := s.ChannelMessageDelete(msg.ChannelID, msg.ID); err != nil {
		b.log.WithError(err).WithField("user_id", userID).Warn("failed to delete ghost ping")
	}
}

func (b *Bot) checkStatusRole(userID string) {
	output, err := b.moderation.CheckStatusRole(context.Background(), &moderation.CheckStatusRoleInput{
		UserID: userID,
	})
	if err != nil {
		b.log.WithError(err).WithField("user_id", userID).Debug("status role check skipped")
		return
	}

	switch output.Result {
	case moderation.StatusResultAdded, moderation.StatusResultRemoved, moderation.StatusResultError:
		b.log.WithFields(logrus.Fields{
			"user_id": userID,
			"result":  output.Result,
		}).Info("status role checked")
	}
}
