package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "shopping_research:"

// RedisSessionStore persists search sessions in Redis so sessions survive
// restarts and are shared across instances. Values are JSON, expiry is
// handled by the Redis TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) contract.SessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *store.SearchSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.Id, payload, s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionId string) (*store.SearchSession, bool, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionId).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var session store.SearchSession
	if err := json.Unmarshal(payload, &session); err != nil {
		// A corrupt value is as good as a miss; the caller re-runs the survey
		return nil, false, nil
	}
	return &session, true, nil
}
