package throttle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the server-side alternative to the cookie store for
// deployments that want lockouts to survive cookie clearing. Records expire
// after RecordTTL, mirroring the cookie lifetime.
type RedisStore struct {
	client redis.UniversalClient
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore constructs a Redis-backed throttle store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(identity string) string {
	return "admin_login_throttle:" + identity
}

// Load reads the identity's record. Missing or undecodable entries fail open
// to the Clear state.
func (s *RedisStore) Load(ctx context.Context, identity string) Record {
	payload, err := s.client.Get(ctx, redisKey(identity)).Bytes()
	if err != nil {
		return Record{}
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}
	}
	return rec
}

// Save persists the record with the standard TTL.
func (s *RedisStore) Save(ctx context.Context, identity string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(identity), payload, RecordTTL).Err(); err != nil {
		return fmt.Errorf("persist record: %w", err)
	}
	return nil
}
