package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps session summaries in process memory with a TTL
// so the map cannot grow without bound. go-cache gives us atomic
// replace-or-read per key, which is all the concurrency the store needs.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Put(sessionID, summary string) {
	r.cache.Set(sessionID, summary, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (string, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(string), true
	}
	return "", false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
