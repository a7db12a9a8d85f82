package moderation

import (
	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/KirkDiggler/joingate/internal/repositories/session"
	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/tier"
)

// StatusResult is the outcome of a status role check
type StatusResult string

const (
	StatusResultAdded          StatusResult = "added"
	StatusResultRemoved        StatusResult = "removed"
	StatusResultAlreadyHasRole StatusResult = "already_has_role"
	StatusResultMissingStatus  StatusResult = "missing_status"
	StatusResultNotConfigured  StatusResult = "not_configured"
	StatusResultIsBot          StatusResult = "is_bot"
	StatusResultError          StatusResult = "error"
)

// Config holds configuration for the moderation service
type Config struct {
	// AdminUserIDs and AdminUsernames may run every moderator command
	AdminUserIDs   []string
	AdminUsernames []string

	// ForceStatusRoleIDs are roles that may run force-status-role
	ForceStatusRoleIDs []string

	// RequiredStatusText and StatusRoleID enable the status role when both set
	RequiredStatusText string
	StatusRoleID       string

	// LogoutURL is shown by update-roles
	LogoutURL string

	Guild       Guild
	SessionRepo session.Repository
	Auditor     audit.Recorder
	Resolver    *tier.Resolver
}

// Actor is the Discord user invoking a command
type Actor struct {
	ID       string
	Username string
	Roles    []string
}

// UpdateRolesInput contains parameters for update-roles
type UpdateRolesInput struct {
	Actor Actor
}

// UpdateRolesOutput contains the caller's live tier
type UpdateRolesOutput struct {
	Tier      models.Tier
	LogoutURL string
}

// CheckStatusRoleInput contains parameters for a status role check
type CheckStatusRoleInput struct {
	UserID string
}

// CheckStatusRoleOutput contains the outcome of a status role check
type CheckStatusRoleOutput struct {
	Result StatusResult
	Member *models.Member
}

// ForceStatusRoleInput contains parameters for force-status-role
type ForceStatusRoleInput struct {
	Actor        Actor
	TargetUserID string
}

// BlacklistInput contains parameters for blacklist-user
type BlacklistInput struct {
	Actor        Actor
	TargetUserID string
	Reason       string
}

// BlacklistOutput contains the result of blacklist-user
type BlacklistOutput struct {
	Target *models.Member

	// AlreadyBlacklisted is true when the role was already present
	AlreadyBlacklisted bool
}

// UnblacklistInput contains parameters for unblacklist-user
type UnblacklistInput struct {
	Actor        Actor
	TargetUserID string
}

// UnblacklistOutput contains the result of unblacklist-user
type UnblacklistOutput struct {
	Target *models.Member

	// WasBlacklisted is false when there was nothing to remove
	WasBlacklisted bool
}

// UnverifyInput contains parameters for unverify-user
type UnverifyInput struct {
	Actor        Actor
	TargetUserID string

	// TargetUsername is used for the audit record only
	TargetUsername string
}

// UnverifyOutput contains the number of deleted sessions
type UnverifyOutput struct {
	SessionsDeleted int
}
