package memory

import (
	"context"
	"time"

	"ai-shopping-be/internal/repository/contract"
	"ai-shopping-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps search sessions in process memory.
// Each entry carries its own TTL; the janitor purges expired entries
// so abandoned sessions do not accumulate.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

var _ contract.SessionStore = &SessionRepository{}

func (r *SessionRepository) Save(_ context.Context, session *store.SearchSession) error {
	r.cache.Set(session.Id, session, r.ttl)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionId string) (*store.SearchSession, bool, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.SearchSession), true, nil
	}
	return nil, false, nil
}
