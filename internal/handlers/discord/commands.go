package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/joingate/internal/services/moderation"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	optionUser   = "user"
	optionReason = "reason"
)

// actorFrom reads the invoking user from a guild or DM interaction
func actorFrom(i *discordgo.InteractionCreate) moderation.Actor {
	if i.Member != nil && i.Member.User != nil {
		return moderation.Actor{
			ID:       i.Member.User.ID,
			Username: i.Member.User.Username,
			Roles:    i.Member.Roles,
		}
	}

	if i.User != nil {
		return moderation.Actor{
			ID:       i.User.ID,
			Username: i.User.Username,
		}
	}

	return moderation.Actor{}
}

// targetFrom reads the user option of a moderator command
func targetFrom(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.User, bool) {
	opt, ok := optionMap(i)[optionUser]
	if !ok {
		return nil, false
	}

	user := opt.UserValue(s)
	if user == nil || user.ID == "" {
		return nil, false
	}

	return user, true
}

// errorMessage maps a moderation error to a reply for the invoker
func errorMessage(err error) string {
	switch {
	case errors.Is(err, moderation.ErrPermissionDenied):
		return "You do not have permission to use this command."
	case errors.Is(err, moderation.ErrTargetNotFound):
		return "That user is not a member of this server."
	case errors.Is(err, moderation.ErrMissingTarget):
		return "Please choose a user."
	default:
		return "Something went wrong. Please try again later."
	}
}

func respondWithModerationError(s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) error {
	if !errors.Is(err, moderation.ErrPermissionDenied) && !errors.Is(err, moderation.ErrTargetNotFound) {
		logrus.WithError(err).WithField("command", command).Error("moderation command failed")
	}
	return RespondWithError(s, i, errorMessage(err))
}

// statusMessage describes a status role result
func statusMessage(result moderation.StatusResult, userID string) string {
	mention := "<@" + userID + ">"
	switch result {
	case moderation.StatusResultAdded:
		return "Status role added to " + mention + "."
	case moderation.StatusResultRemoved:
		return "Status role removed from " + mention + " because the required status is missing."
	case moderation.StatusResultAlreadyHasRole:
		return mention + " already has the status role."
	case moderation.StatusResultMissingStatus:
		return mention + " does not have the required text in their custom status."
	case moderation.StatusResultNotConfigured:
		return "The status role is not configured on this server."
	case moderation.StatusResultIsBot:
		return "Bots cannot receive the status role."
	default:
		return "The status role could not be updated. Please try again later."
	}
}

// UpdateRolesCommand handles /update-roles
type UpdateRolesCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewUpdateRolesCommand creates the update-roles command
func NewUpdateRolesCommand(svc moderation.Service) *UpdateRolesCommand {
	return &UpdateRolesCommand{
		BaseCommand: BaseCommand{
			Name:        "update-roles",
			Description: "Checks your current roles and helps you update your web session.",
		},
		moderation: svc,
	}
}

// Handle processes /update-roles
func (c *UpdateRolesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.moderation.UpdateRoles(context.Background(), &moderation.UpdateRolesInput{
		Actor: actorFrom(i),
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	description := fmt.Sprintf("Your current access tier is **%s**.", output.Tier)
	if output.LogoutURL != "" {
		description += fmt.Sprintf("\n\nIf your roles changed, [log out](%s) and join again from the game to refresh your web session.", output.LogoutURL)
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Your roles",
		Description: description,
		Color:       colorSuccess,
	})
}

// StatusRoleCommand handles /status-role for the invoker
type StatusRoleCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewStatusRoleCommand creates the status-role command
func NewStatusRoleCommand(svc moderation.Service) *StatusRoleCommand {
	return &StatusRoleCommand{
		BaseCommand: BaseCommand{
			Name:        "status-role",
			Description: "Manually checks your status and assigns the status role.",
		},
		moderation: svc,
	}
}

// Handle processes /status-role
func (c *StatusRoleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	actor := actorFrom(i)

	output, err := c.moderation.CheckStatusRole(context.Background(), &moderation.CheckStatusRoleInput{
		UserID: actor.ID,
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	return RespondWithEphemeralMessage(s, i, statusMessage(output.Result, actor.ID))
}

// ForceStatusRoleCommand handles /force-status-role
type ForceStatusRoleCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewForceStatusRoleCommand creates the force-status-role command
func NewForceStatusRoleCommand(svc moderation.Service) *ForceStatusRoleCommand {
	return &ForceStatusRoleCommand{
		BaseCommand: BaseCommand{
			Name:        "force-status-role",
			Description: "Re-checks the status role for a member.",
			Options: []*discordgo.ApplicationCommandOption{
				userOption(optionUser, "The member to check"),
			},
		},
		moderation: svc,
	}
}

// Handle processes /force-status-role
func (c *ForceStatusRoleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target, ok := targetFrom(s, i)
	if !ok {
		return RespondWithError(s, i, errorMessage(moderation.ErrMissingTarget))
	}

	output, err := c.moderation.ForceStatusRole(context.Background(), &moderation.ForceStatusRoleInput{
		Actor:        actorFrom(i),
		TargetUserID: target.ID,
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	return RespondWithEphemeralMessage(s, i, statusMessage(output.Result, target.ID))
}

// BlacklistCommand handles /blacklist-user
type BlacklistCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewBlacklistCommand creates the blacklist-user command
func NewBlacklistCommand(svc moderation.Service) *BlacklistCommand {
	return &BlacklistCommand{
		BaseCommand: BaseCommand{
			Name:        "blacklist-user",
			Description: "Blocks a member from joining game servers.",
			Options: []*discordgo.ApplicationCommandOption{
				userOption(optionUser, "The member to blacklist"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionReason,
					Description: "Why the member is blacklisted",
				},
			},
		},
		moderation: svc,
	}
}

// Handle processes /blacklist-user
func (c *BlacklistCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target, ok := targetFrom(s, i)
	if !ok {
		return RespondWithError(s, i, errorMessage(moderation.ErrMissingTarget))
	}

	reason := ""
	if opt, ok := optionMap(i)[optionReason]; ok {
		reason = opt.StringValue()
	}

	output, err := c.moderation.Blacklist(context.Background(), &moderation.BlacklistInput{
		Actor:        actorFrom(i),
		TargetUserID: target.ID,
		Reason:       reason,
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	if output.AlreadyBlacklisted {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("<@%s> is already blacklisted.", target.ID))
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "User blacklisted",
		Description: fmt.Sprintf("<@%s> can no longer join game servers.", target.ID),
		Color:       colorWarning,
	})
}

// UnblacklistCommand handles /unblacklist-user
type UnblacklistCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewUnblacklistCommand creates the unblacklist-user command
func NewUnblacklistCommand(svc moderation.Service) *UnblacklistCommand {
	return &UnblacklistCommand{
		BaseCommand: BaseCommand{
			Name:        "unblacklist-user",
			Description: "Lifts a member's blacklist.",
			Options: []*discordgo.ApplicationCommandOption{
				userOption(optionUser, "The member to unblacklist"),
			},
		},
		moderation: svc,
	}
}

// Handle processes /unblacklist-user
func (c *UnblacklistCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target, ok := targetFrom(s, i)
	if !ok {
		return RespondWithError(s, i, errorMessage(moderation.ErrMissingTarget))
	}

	output, err := c.moderation.Unblacklist(context.Background(), &moderation.UnblacklistInput{
		Actor:        actorFrom(i),
		TargetUserID: target.ID,
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	if !output.WasBlacklisted {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("<@%s> is not blacklisted.", target.ID))
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "User unblacklisted",
		Description: fmt.Sprintf("<@%s> can join game servers again.", target.ID),
		Color:       colorSuccess,
	})
}

// UnverifyCommand handles /unverify-user
type UnverifyCommand struct {
	BaseCommand
	moderation moderation.Service
}

// NewUnverifyCommand creates the unverify-user command
func NewUnverifyCommand(svc moderation.Service) *UnverifyCommand {
	return &UnverifyCommand{
		BaseCommand: BaseCommand{
			Name:        "unverify-user",
			Description: "Logs a member out of every web session.",
			Options: []*discordgo.ApplicationCommandOption{
				userOption(optionUser, "The member to log out"),
			},
		},
		moderation: svc,
	}
}

// Handle processes /unverify-user
func (c *UnverifyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	target, ok := targetFrom(s, i)
	if !ok {
		return RespondWithError(s, i, errorMessage(moderation.ErrMissingTarget))
	}

	output, err := c.moderation.Unverify(context.Background(), &moderation.UnverifyInput{
		Actor:          actorFrom(i),
		TargetUserID:   target.ID,
		TargetUsername: target.Username,
	})
	if err != nil {
		return respondWithModerationError(s, i, c.Name, err)
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "User unverified",
		Description: fmt.Sprintf("Deleted %d web session(s) for <@%s>.", output.SessionsDeleted, target.ID),
		Color:       colorWarning,
	})
}
