package moderation

import (
	"context"

	"github.com/KirkDiggler/joingate/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/joingate/internal/services/moderation Service
//go:generate mockgen -package=mocks -destination=mocks/mock_guild.go github.com/KirkDiggler/joingate/internal/services/moderation Guild

// Service handles moderator commands and the status role
type Service interface {
	// UpdateRoles reports the caller's live tier
	UpdateRoles(ctx context.Context, input *UpdateRolesInput) (*UpdateRolesOutput, error)

	// CheckStatusRole re-evaluates the status role for one member
	CheckStatusRole(ctx context.Context, input *CheckStatusRoleInput) (*CheckStatusRoleOutput, error)

	// ForceStatusRole is CheckStatusRole on behalf of an authorized moderator
	ForceStatusRole(ctx context.Context, input *ForceStatusRoleInput) (*CheckStatusRoleOutput, error)

	// Blacklist adds the blacklist role to a member
	Blacklist(ctx context.Context, input *BlacklistInput) (*BlacklistOutput, error)

	// Unblacklist removes the blacklist role from a member
	Unblacklist(ctx context.Context, input *UnblacklistInput) (*UnblacklistOutput, error)

	// Unverify deletes every web session belonging to a user
	Unverify(ctx context.Context, input *UnverifyInput) (*UnverifyOutput, error)
}

// Guild reads and mutates live guild membership
type Guild interface {
	// GetMember returns ErrTargetNotFound if the user is not in the guild
	GetMember(ctx context.Context, userID string) (*models.Member, error)

	AddRole(ctx context.Context, userID, roleID string) error
	RemoveRole(ctx context.Context, userID, roleID string) error
}
