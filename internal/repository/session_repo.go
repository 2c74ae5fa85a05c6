package repository

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"mkpp-service/internal/booking"
)

// SessionRepository keeps one booking desk per visitor in memory. Entries
// expire after ttl without access; nothing is written anywhere else.
type SessionRepository struct {
	mu      sync.Mutex
	cache   *cache.Cache
	newDesk func() *booking.Desk
}

// NewSessionRepository builds the store. Expired entries are only removed by
// DeleteExpired, which the sweeper job calls on its schedule.
func NewSessionRepository(ttl time.Duration, newDesk func() *booking.Desk) *SessionRepository {
	return &SessionRepository{
		cache:   cache.New(ttl, 0),
		newDesk: newDesk,
	}
}

// GetOrCreate returns the visitor's desk, creating it on first access, and
// pushes its expiry forward.
func (r *SessionRepository) GetOrCreate(visitorID string) *booking.Desk {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(visitorID); ok {
		desk := v.(*booking.Desk)
		r.cache.SetDefault(visitorID, desk)
		return desk
	}
	desk := r.newDesk()
	r.cache.SetDefault(visitorID, desk)
	return desk
}

// Reset replaces the visitor's desk with a new one. Whatever the old desk
// held is gone.
func (r *SessionRepository) Reset(visitorID string) *booking.Desk {
	r.mu.Lock()
	defer r.mu.Unlock()

	desk := r.newDesk()
	r.cache.SetDefault(visitorID, desk)
	return desk
}

// Find returns the visitor's desk without creating one or touching its expiry.
func (r *SessionRepository) Find(visitorID string) (*booking.Desk, bool) {
	v, ok := r.cache.Get(visitorID)
	if !ok {
		return nil, false
	}
	return v.(*booking.Desk), true
}

// DeleteExpired drops idle desks and returns how many were removed.
func (r *SessionRepository) DeleteExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.cache.ItemCount()
	r.cache.DeleteExpired()
	return before - r.cache.ItemCount()
}

// Count includes entries that expired but were not swept yet.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
