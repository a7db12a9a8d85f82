package moderation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/KirkDiggler/joingate/internal/repositories/session"
	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/tier"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	config        *Config
	guild         Guild
	sessionRepo   session.Repository
	auditor       audit.Recorder
	resolver      *tier.Resolver
	blacklistRole string
}

// New creates a new moderation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Guild == nil {
		return nil, ErrNilGuild
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.Resolver.BlacklistRole() == "" {
		return nil, ErrMissingBlacklistRole
	}

	auditor := cfg.Auditor
	if auditor == nil {
		auditor = noopRecorder{}
	}

	return &service{
		config:        cfg,
		guild:         cfg.Guild,
		sessionRepo:   cfg.SessionRepo,
		auditor:       auditor,
		resolver:      cfg.Resolver,
		blacklistRole: cfg.Resolver.BlacklistRole(),
	}, nil
}

// UpdateRoles reads the caller's live roles and reports the tier a fresh
// login would get
func (s *service) UpdateRoles(ctx context.Context, input *UpdateRolesInput) (*UpdateRolesOutput, error) {
	if input == nil || input.Actor.ID == "" {
		return nil, ErrMissingTarget
	}

	member, err := s.guild.GetMember(ctx, input.Actor.ID)
	if err != nil {
		return nil, err
	}

	return &UpdateRolesOutput{
		Tier:      s.resolver.Resolve(member.Roles),
		LogoutURL: s.config.LogoutURL,
	}, nil
}

// CheckStatusRole adds the status role when the member's custom status
// contains the required text and removes it when it does not
func (s *service) CheckStatusRole(ctx context.Context, input *CheckStatusRoleInput) (*CheckStatusRoleOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingTarget
	}

	if s.config.RequiredStatusText == "" || s.config.StatusRoleID == "" {
		return &CheckStatusRoleOutput{Result: StatusResultNotConfigured}, nil
	}

	member, err := s.guild.GetMember(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, ErrTargetNotFound) {
			return nil, err
		}
		logrus.WithError(err).WithField("user_id", input.UserID).Warn("status role lookup failed")
		return &CheckStatusRoleOutput{Result: StatusResultError}, nil
	}

	output := &CheckStatusRoleOutput{Member: member}

	if member.Bot {
		output.Result = StatusResultIsBot
		return output, nil
	}

	hasText := strings.Contains(
		strings.ToLower(member.CustomStatus),
		strings.ToLower(s.config.RequiredStatusText),
	)
	hasRole := member.HasRole(s.config.StatusRoleID)

	switch {
	case hasText && hasRole:
		output.Result = StatusResultAlreadyHasRole
	case hasText:
		output.Result = StatusResultAdded
		err = s.guild.AddRole(ctx, member.ID, s.config.StatusRoleID)
	case hasRole:
		output.Result = StatusResultRemoved
		err = s.guild.RemoveRole(ctx, member.ID, s.config.StatusRoleID)
	default:
		output.Result = StatusResultMissingStatus
	}

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": member.ID,
			"result":  output.Result,
		}).Warn("status role update failed")
		output.Result = StatusResultError
	}

	return output, nil
}

// ForceStatusRole runs a status role check for another member
func (s *service) ForceStatusRole(ctx context.Context, input *ForceStatusRoleInput) (*CheckStatusRoleOutput, error) {
	if input == nil {
		return nil, ErrMissingTarget
	}

	if !s.isAdmin(input.Actor) && !s.canForceStatus(input.Actor) {
		return nil, ErrPermissionDenied
	}

	return s.CheckStatusRole(ctx, &CheckStatusRoleInput{UserID: input.TargetUserID})
}

// Blacklist adds the blacklist role. A member who already has it is
// reported as such and nothing is audited.
func (s *service) Blacklist(ctx context.Context, input *BlacklistInput) (*BlacklistOutput, error) {
	if input == nil {
		return nil, ErrMissingTarget
	}

	member, err := s.authorizedTarget(ctx, input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}

	if member.HasRole(s.blacklistRole) {
		return &BlacklistOutput{Target: member, AlreadyBlacklisted: true}, nil
	}

	if err := s.guild.AddRole(ctx, member.ID, s.blacklistRole); err != nil {
		return nil, fmt.Errorf("failed to add blacklist role: %w", err)
	}

	s.auditor.Record(ctx, &audit.Event{
		Type:           audit.EventBlacklist,
		TargetUserID:   member.ID,
		TargetUsername: member.Username,
		ActorID:        input.Actor.ID,
		ActorUsername:  input.Actor.Username,
		Reason:         input.Reason,
		Details:        memberDetails(member),
	})

	return &BlacklistOutput{Target: member}, nil
}

// Unblacklist removes the blacklist role
func (s *service) Unblacklist(ctx context.Context, input *UnblacklistInput) (*UnblacklistOutput, error) {
	if input == nil {
		return nil, ErrMissingTarget
	}

	member, err := s.authorizedTarget(ctx, input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}

	if !member.HasRole(s.blacklistRole) {
		return &UnblacklistOutput{Target: member}, nil
	}

	if err := s.guild.RemoveRole(ctx, member.ID, s.blacklistRole); err != nil {
		return nil, fmt.Errorf("failed to remove blacklist role: %w", err)
	}

	s.auditor.Record(ctx, &audit.Event{
		Type:           audit.EventUnblacklist,
		TargetUserID:   member.ID,
		TargetUsername: member.Username,
		ActorID:        input.Actor.ID,
		ActorUsername:  input.Actor.Username,
		Details:        memberDetails(member),
	})

	return &UnblacklistOutput{Target: member, WasBlacklisted: true}, nil
}

// Unverify scans every session and deletes those owned by the target
func (s *service) Unverify(ctx context.Context, input *UnverifyInput) (*UnverifyOutput, error) {
	if input == nil {
		return nil, ErrMissingTarget
	}

	if !s.isAdmin(input.Actor) {
		return nil, ErrPermissionDenied
	}

	if input.TargetUserID == "" {
		return nil, ErrMissingTarget
	}

	deleted := 0
	for sess, err := range s.sessionRepo.ScanSessions(ctx, &session.ScanSessionsInput{}) {
		if err != nil {
			return nil, fmt.Errorf("failed to scan sessions: %w", err)
		}

		if !sess.IsAuthenticated() || sess.User.ID != input.TargetUserID {
			continue
		}

		output, err := s.sessionRepo.DeleteSession(ctx, &session.DeleteSessionInput{Token: sess.Token})
		if err != nil {
			return nil, fmt.Errorf("failed to delete session: %w", err)
		}

		if output.Deleted {
			deleted++
		}
	}

	if deleted == 0 {
		return &UnverifyOutput{}, nil
	}

	s.auditor.Record(ctx, &audit.Event{
		Type:           audit.EventSessionInvalidation,
		TargetUserID:   input.TargetUserID,
		TargetUsername: input.TargetUsername,
		ActorID:        input.Actor.ID,
		ActorUsername:  input.Actor.Username,
		Details: map[string]string{
			"sessions_deleted": strconv.Itoa(deleted),
		},
	})

	return &UnverifyOutput{SessionsDeleted: deleted}, nil
}

// memberDetails adds the guild display name when it differs from the username
func memberDetails(member *models.Member) map[string]string {
	if member.DisplayName == "" || member.DisplayName == member.Username {
		return nil
	}
	return map[string]string{"display_name": member.DisplayName}
}

func (s *service) authorizedTarget(ctx context.Context, actor Actor, targetUserID string) (*models.Member, error) {
	if !s.isAdmin(actor) {
		return nil, ErrPermissionDenied
	}

	if targetUserID == "" {
		return nil, ErrMissingTarget
	}

	return s.guild.GetMember(ctx, targetUserID)
}

func (s *service) isAdmin(actor Actor) bool {
	if actor.ID == "" {
		return false
	}

	if slices.Contains(s.config.AdminUserIDs, actor.ID) {
		return true
	}

	return slices.ContainsFunc(s.config.AdminUsernames, func(name string) bool {
		return strings.EqualFold(name, actor.Username)
	})
}

func (s *service) canForceStatus(actor Actor) bool {
	return slices.ContainsFunc(actor.Roles, func(roleID string) bool {
		return roleID != "" && slices.Contains(s.config.ForceStatusRoleIDs, roleID)
	})
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *audit.Event) {}
