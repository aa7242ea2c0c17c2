package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assistant:session:"

// SessionRepository is the production session-store backing. Redis SET is
// an atomic replace, matching the last-write-wins contract; the TTL keeps
// storage bounded the same way the in-memory store does.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Put(sessionID, summary string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r.client.Set(ctx, keyPrefix+sessionID, summary, r.ttl)
}

func (r *SessionRepository) Get(sessionID string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	val, err := r.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return "", false
	}
	return val, true
}
