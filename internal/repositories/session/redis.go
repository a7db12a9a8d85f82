package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/KirkDiggler/joingate/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// sessionKeyPrefix matches the layout used by connect-redis so existing
	// deployments keep their keyspace
	sessionKeyPrefix = "sess:"

	// scanBatchSize is the COUNT hint passed to SCAN
	scanBatchSize = 500
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// DefaultTTL is the inactivity window applied on every save
	DefaultTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if cfg.DefaultTTL <= 0 {
		return nil, ErrInvalidTTL
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// GetSession retrieves a session by token from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.Token == "" {
		return nil, ErrEmptyToken
	}

	raw, err := r.client.Get(ctx, sessionKey(input.Token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	sess.Token = input.Token

	return &sess, nil
}

// SaveSession writes a session to Redis with a fresh expiry
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.Token == "" {
		return ErrEmptyToken
	}

	ttl := r.defaultTTL
	if input.TTL > 0 {
		ttl = input.TTL
	}

	raw, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(input.Session.Token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrEmptyToken
	}

	n, err := r.client.Del(ctx, sessionKey(input.Token)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &DeleteSessionOutput{
		Deleted: n > 0,
	}, nil
}

// ScanSessions walks the keyspace with SCAN and fetches each batch with
// MGET. Keys that expire between the two calls and corrupt documents are
// skipped. A store error is yielded once and ends the sequence.
func (r *redisRepository) ScanSessions(ctx context.Context, input *ScanSessionsInput) iter.Seq2[*models.Session, error] {
	pattern := "*"
	if input != nil && input.Pattern != "" {
		pattern = input.Pattern
	}
	match := sessionKey(pattern)

	return func(yield func(*models.Session, error) bool) {
		var cursor uint64
		for {
			keys, next, err := r.client.Scan(ctx, cursor, match, scanBatchSize).Result()
			if err != nil {
				yield(nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err))
				return
			}

			if len(keys) > 0 {
				values, err := r.client.MGet(ctx, keys...).Result()
				if err != nil {
					yield(nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err))
					return
				}

				for i, value := range values {
					raw, ok := value.(string)
					if !ok {
						continue
					}

					var sess models.Session
					if err := json.Unmarshal([]byte(raw), &sess); err != nil {
						continue
					}
					sess.Token = strings.TrimPrefix(keys[i], sessionKeyPrefix)

					if !yield(&sess, nil) {
						return
					}
				}
			}

			cursor = next
			if cursor == 0 {
				return
			}
		}
	}
}

// Ping checks Redis is reachable
func (r *redisRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
