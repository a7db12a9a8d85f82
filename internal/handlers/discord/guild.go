package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/KirkDiggler/joingate/internal/services/moderation"
	"github.com/bwmarrin/discordgo"
)

// Guild reads and mutates members of one guild through the bot session
type Guild struct {
	session *discordgo.Session
	guildID string
}

// NewGuild creates a guild adapter for guildID
func NewGuild(session *discordgo.Session, guildID string) *Guild {
	return &Guild{
		session: session,
		guildID: guildID,
	}
}

// GetMember returns the member's live roles and custom status. The state
// cache is preferred, REST is used when the member is not cached.
func (g *Guild) GetMember(ctx context.Context, userID string) (*models.Member, error) {
	member, err := g.session.State.Member(g.guildID, userID)
	if err != nil {
		member, err = g.session.GuildMember(g.guildID, userID, discordgo.WithContext(ctx))
		if err != nil {
			if isUnknownMember(err) {
				return nil, moderation.ErrTargetNotFound
			}
			return nil, fmt.Errorf("failed to fetch guild member: %w", err)
		}
	}

	return g.toModel(member), nil
}

// AddRole adds roleID to the member
func (g *Guild) AddRole(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		if isUnknownMember(err) {
			return moderation.ErrTargetNotFound
		}
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}

// RemoveRole removes roleID from the member
func (g *Guild) RemoveRole(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleRemove(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		if isUnknownMember(err) {
			return moderation.ErrTargetNotFound
		}
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return nil
}

func (g *Guild) toModel(member *discordgo.Member) *models.Member {
	out := &models.Member{
		Roles: append([]string(nil), member.Roles...),
	}

	if member.User != nil {
		out.ID = member.User.ID
		out.Username = member.User.Username
		out.DisplayName = member.User.GlobalName
		out.Bot = member.User.Bot
	}

	if member.Nick != "" {
		out.DisplayName = member.Nick
	}
	if out.DisplayName == "" {
		out.DisplayName = out.Username
	}

	out.CustomStatus = g.customStatus(out.ID)

	return out
}

// customStatus reads the custom status text from the presence cache. Only
// the gateway delivers presences, so a member without one has no status.
func (g *Guild) customStatus(userID string) string {
	presence, err := g.session.State.Presence(g.guildID, userID)
	if err != nil || presence == nil {
		return ""
	}

	return customStatusText(presence.Activities)
}

func customStatusText(activities []*discordgo.Activity) string {
	for _, activity := range activities {
		if activity != nil && activity.Type == discordgo.ActivityTypeCustom {
			return activity.State
		}
	}
	return ""
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}

	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember {
		return true
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
