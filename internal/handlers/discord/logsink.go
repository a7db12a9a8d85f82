package discord

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/bwmarrin/discordgo"
)

// LogSink posts audit events as embeds to a log channel
type LogSink struct {
	session   *discordgo.Session
	channelID string
}

// NewLogSink creates a sink for channelID
func NewLogSink(session *discordgo.Session, channelID string) *LogSink {
	return &LogSink{
		session:   session,
		channelID: channelID,
	}
}

// Deliver sends one audit embed
func (l *LogSink) Deliver(ctx context.Context, event *audit.Event) error {
	if _, err := l.session.ChannelMessageSendEmbed(l.channelID, auditEmbed(event), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send audit embed: %w", err)
	}
	return nil
}

var auditTitles = map[audit.EventType]string{
	audit.EventWebLogin:            "Web login",
	audit.EventLogout:              "Web logout",
	audit.EventBlacklist:           "User blacklisted",
	audit.EventUnblacklist:         "User unblacklisted",
	audit.EventSessionInvalidation: "Sessions invalidated",
}

var auditColors = map[audit.EventType]int{
	audit.EventWebLogin:            colorSuccess,
	audit.EventLogout:              colorSuccess,
	audit.EventBlacklist:           colorError,
	audit.EventUnblacklist:         colorSuccess,
	audit.EventSessionInvalidation: colorWarning,
}

func auditEmbed(event *audit.Event) *discordgo.MessageEmbed {
	title, ok := auditTitles[event.Type]
	if !ok {
		title = string(event.Type)
	}

	embed := &discordgo.MessageEmbed{
		Title:     title,
		Color:     auditColors[event.Type],
		Timestamp: event.Timestamp.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "User",
				Value:  userField(event.TargetUserID, event.TargetUsername),
				Inline: true,
			},
		},
	}

	if event.ActorID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Moderator",
			Value:  userField(event.ActorID, event.ActorUsername),
			Inline: true,
		})
	}

	if event.Reason != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Reason",
			Value: event.Reason,
		})
	}

	keys := make([]string, 0, len(event.Details))
	for k := range event.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   k,
			Value:  event.Details[k],
			Inline: true,
		})
	}

	return embed
}

func userField(id, username string) string {
	switch {
	case id == "":
		return username
	case username == "":
		return "<@" + id + ">"
	default:
		return fmt.Sprintf("<@%s> (%s)", id, username)
	}
}
