package memory

import (
	"time"

	"project-nexus-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live shopper sessions in process memory. Sessions
// disappear on restart; everything durable lives in the relational store.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	// Expired sessions are purged every 10 minutes.
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.ShopperSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.ShopperSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.ShopperSession), true
	}
	return nil, false
}

// GetByUser scans for a user's live session. The session count is tiny in a
// single-process deployment so the linear scan is fine.
func (r *SessionRepository) GetByUser(userID string) (*store.ShopperSession, bool) {
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*store.ShopperSession); ok && s.UserID == userID {
			return s, true
		}
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
