package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/KirkDiggler/joingate/internal/services/audit"
	"github.com/KirkDiggler/joingate/internal/services/moderation"
	"github.com/KirkDiggler/joingate/internal/services/moderation/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockModeration *mocks.MockService
	session        *discordgo.Session
}

func (s *BotTestSuite) SetupTest() {
	var err error
	s.mockCtrl = gomock.NewController(s.T())
	s.mockModeration = mocks.NewMockService(s.mockCtrl)

	s.session, err = NewSession("test-token")
	s.Require().NoError(err)
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BotTestSuite) TestNewSessionIntents() {
	s.NotZero(s.session.Identify.Intents & discordgo.IntentsGuildMembers)
	s.NotZero(s.session.Identify.Intents & discordgo.IntentsGuildPresences)

	_, err := NewSession("")
	s.Error(err)
}

func (s *BotTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Session: s.session, Moderation: s.mockModeration})
	s.Error(err, "guild is required")

	_, err = New(&Config{Session: s.session, GuildID: "guild-1"})
	s.Error(err, "moderation is required")
}

func (s *BotTestSuite) TestNewRegistersAllCommands() {
	bot, err := New(&Config{
		Session:    s.session,
		GuildID:    "guild-1",
		Moderation: s.mockModeration,
	})
	s.Require().NoError(err)

	for _, name := range []string{
		"update-roles",
		"status-role",
		"force-status-role",
		"blacklist-user",
		"unblacklist-user",
		"unverify-user",
	} {
		cmd, ok := bot.commands[name]
		s.Require().True(ok, name)
		s.Equal(name, cmd.GetCommand().Name)
	}
}

func (s *BotTestSuite) TestPresenceUpdateChecksStatusRole() {
	bot, err := New(&Config{
		Session:    s.session,
		GuildID:    "guild-1",
		Moderation: s.mockModeration,
	})
	s.Require().NoError(err)

	s.mockModeration.EXPECT().
		CheckStatusRole(gomock.Any(), &moderation.CheckStatusRoleInput{UserID: "user-1"}).
		Return(&moderation.CheckStatusRoleOutput{Result: moderation.StatusResultAdded}, nil)

	bot.handlePresenceUpdate(s.session, &discordgo.PresenceUpdate{
		GuildID:  "guild-1",
		Presence: discordgo.Presence{User: &discordgo.User{ID: "user-1"}},
	})

	// other guilds and bots are ignored
	bot.handlePresenceUpdate(s.session, &discordgo.PresenceUpdate{
		GuildID:  "guild-2",
		Presence: discordgo.Presence{User: &discordgo.User{ID: "user-1"}},
	})
	bot.handlePresenceUpdate(s.session, &discordgo.PresenceUpdate{
		GuildID:  "guild-1",
		Presence: discordgo.Presence{User: &discordgo.User{ID: "bot-1", Bot: true}},
	})
}

func (s *BotTestSuite) TestBlacklistCommandOptions() {
	cmd := NewBlacklistCommand(s.mockModeration)
	s.Len(cmd.GetCommand().Options, 2)
	s.True(cmd.GetCommand().Options[0].Required)
	s.False(cmd.GetCommand().Options[1].Required)
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func TestActorFrom(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{
			User:  &discordgo.User{ID: "u1", Username: "alice"},
			Roles: []string{"r1"},
		},
	}}
	assert.Equal(t, moderation.Actor{ID: "u1", Username: "alice", Roles: []string{"r1"}}, actorFrom(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "u2", Username: "bob"},
	}}
	assert.Equal(t, moderation.Actor{ID: "u2", Username: "bob"}, actorFrom(dm))
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, errorMessage(moderation.ErrPermissionDenied), "permission")
	assert.Contains(t, errorMessage(fmt.Errorf("wrapped: %w", moderation.ErrTargetNotFound)), "not a member")
	assert.Contains(t, errorMessage(errors.New("boom")), "Something went wrong")
}

func TestStatusMessage(t *testing.T) {
	results := []moderation.StatusResult{
		moderation.StatusResultAdded,
		moderation.StatusResultRemoved,
		moderation.StatusResultAlreadyHasRole,
		moderation.StatusResultMissingStatus,
		moderation.StatusResultNotConfigured,
		moderation.StatusResultIsBot,
		moderation.StatusResultError,
	}

	seen := make(map[string]bool)
	for _, result := range results {
		msg := statusMessage(result, "u1")
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message for %s", result)
		seen[msg] = true
	}
}

func TestCustomStatusText(t *testing.T) {
	activities := []*discordgo.Activity{
		{Type: discordgo.ActivityTypeGame, Name: "Roblox"},
		{Type: discordgo.ActivityTypeCustom, Name: "Custom Status", State: "discord.gg/mygame"},
	}
	assert.Equal(t, "discord.gg/mygame", customStatusText(activities))
	assert.Empty(t, customStatusText(nil))
}

func TestIsUnknownMember(t *testing.T) {
	assert.True(t, isUnknownMember(&discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMember},
	}))
	assert.True(t, isUnknownMember(fmt.Errorf("wrapped: %w", &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
	})))
	assert.False(t, isUnknownMember(&discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
	}))
	assert.False(t, isUnknownMember(errors.New("timeout")))
}

func TestAuditEmbed(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	embed := auditEmbed(&audit.Event{
		Type:           audit.EventBlacklist,
		TargetUserID:   "u1",
		TargetUsername: "alice",
		ActorID:        "m1",
		ActorUsername:  "mod",
		Reason:         "alt account",
		Details:        map[string]string{"b": "2", "a": "1"},
		Timestamp:      ts,
	})

	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "User blacklisted", embed.Title)
	assert.Equal(t, colorError, embed.Color)
	assert.Equal(t, "2025-06-01T12:00:00Z", embed.Timestamp)
	assert.Equal(t, "<@u1> (alice)", embed.Fields[0].Value)
	assert.Equal(t, "<@m1> (mod)", embed.Fields[1].Value)
	assert.Equal(t, "alt account", embed.Fields[2].Value)
	assert.Equal(t, "a", embed.Fields[3].Name)
	assert.Equal(t, "b", embed.Fields[4].Name)

	login := auditEmbed(&audit.Event{Type: audit.EventWebLogin, TargetUserID: "u1"})
	require.Len(t, login.Fields, 1)
	assert.Equal(t, "<@u1>", login.Fields[0].Value)
}
