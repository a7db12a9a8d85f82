package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		DefaultTTL:  7 * 24 * time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(token, userID string) *models.Session {
	sess := &models.Session{
		Token:          token,
		GameInstanceID: "game-" + token,
		Stage:          models.AuthStageAuthenticated,
		CreatedAt:      s.testNow,
		UpdatedAt:      s.testNow,
	}
	if userID != "" {
		sess.User = &models.Identity{
			ID:       userID,
			Username: "user-" + userID,
			Roles:    []string{"member", "level15"},
		}
	}
	return sess
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&Config{DefaultTTL: time.Hour})
	s.ErrorIs(err, ErrNilRedisClient)

	_, err = NewRedis(&Config{RedisClient: s.client})
	s.ErrorIs(err, ErrInvalidTTL)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.newSession("token-1", "user-1")

	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "token-1"})
	s.Require().NoError(err)

	s.Equal("token-1", got.Token)
	s.Equal("game-token-1", got.GameInstanceID)
	s.Equal(models.AuthStageAuthenticated, got.Stage)
	s.Equal(sess.User, got.User)
	s.True(got.CreatedAt.Equal(s.testNow))
	s.True(s.mr.Exists("sess:token-1"))
}

func (s *RedisRepositoryTestSuite) TestGetMissingSession() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptSession() {
	s.Require().NoError(s.mr.Set("sess:broken", "{not json"))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "broken"})
	s.ErrorIs(err, ErrSessionCorrupt)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	sess := s.newSession("token-ttl", "user-1")
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
		Session: sess,
		TTL:     time.Minute,
	}))
	s.Equal(time.Minute, s.mr.TTL("sess:token-ttl"))

	s.mr.FastForward(2 * time.Minute)

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{Token: "token-ttl"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSlidesExpiry() {
	sess := s.newSession("token-slide", "")
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	s.mr.FastForward(6 * 24 * time.Hour)
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	s.Equal(7*24*time.Hour, s.mr.TTL("sess:token-slide"))
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.newSession("token-del", "user-1")
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	out, err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{Token: "token-del"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{Token: "token-del"})
	s.ErrorIs(err, ErrSessionNotFound)

	out, err = s.repo.DeleteSession(s.ctx, &DeleteSessionInput{Token: "token-del"})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestScanSessions() {
	for _, sess := range []*models.Session{
		s.newSession("a", "user-1"),
		s.newSession("b", "user-2"),
		s.newSession("c", "user-1"),
		s.newSession("d", ""),
	} {
		s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))
	}
	s.Require().NoError(s.mr.Set("sess:corrupt", "]]"))
	s.Require().NoError(s.mr.Set("other:key", "{}"))

	tokens := map[string]string{}
	for sess, err := range s.repo.ScanSessions(s.ctx, &ScanSessionsInput{}) {
		s.Require().NoError(err)
		userID := ""
		if sess.User != nil {
			userID = sess.User.ID
		}
		tokens[sess.Token] = userID
	}

	s.Equal(map[string]string{
		"a": "user-1",
		"b": "user-2",
		"c": "user-1",
		"d": "",
	}, tokens)
}

func (s *RedisRepositoryTestSuite) TestScanSessionsStopsEarly() {
	for _, token := range []string{"a", "b", "c"} {
		s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession(token, "user")}))
	}

	seen := 0
	for _, err := range s.repo.ScanSessions(s.ctx, nil) {
		s.Require().NoError(err)
		seen++
		break
	}
	s.Equal(1, seen)
}

func (s *RedisRepositoryTestSuite) TestStoreUnavailable() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	repo, err := NewRedis(&Config{RedisClient: client, DefaultTTL: time.Hour})
	s.Require().NoError(err)
	mr.Close()

	_, err = repo.GetSession(s.ctx, &GetSessionInput{Token: "t"})
	s.ErrorIs(err, ErrStoreUnavailable)
	s.False(errors.Is(err, ErrSessionNotFound))

	err = repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("t", "")})
	s.ErrorIs(err, ErrStoreUnavailable)

	_, err = repo.DeleteSession(s.ctx, &DeleteSessionInput{Token: "t"})
	s.ErrorIs(err, ErrStoreUnavailable)

	for _, err := range repo.ScanSessions(s.ctx, nil) {
		s.ErrorIs(err, ErrStoreUnavailable)
	}

	s.ErrorIs(repo.Ping(s.ctx), ErrStoreUnavailable)
}
