package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the explicit per-visitor state object: a private copy of the
// catalog, the cart and the saved filter criteria. Handlers must hold the
// session lock while reading or mutating it.
type Session struct {
	sync.Mutex `json:"-"`

	ID             uuid.UUID      `json:"id"`
	Products       []Product      `json:"-"`
	Cart           Cart           `json:"-"`
	Filters        FilterCriteria `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

// NewSession creates a session seeded with the default catalog, an empty
// cart and wide-open filters.
func NewSession(ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.Must(uuid.NewV7()),
		Products:       DefaultProducts(),
		Cart:           make(Cart),
		Filters:        DefaultFilterCriteria(),
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
	}
}

// Reset restores the seed catalog, empties the cart and clears the filters.
// Caller holds the lock.
func (s *Session) Reset() {
	s.Products = DefaultProducts()
	s.Cart = make(Cart)
	s.Filters = DefaultFilterCriteria()
}

// Touch extends the session's lifetime after activity. Caller holds the lock.
func (s *Session) Touch(ttl time.Duration) {
	s.LastActivityAt = time.Now()
	s.ExpiresAt = s.LastActivityAt.Add(ttl)
}

// Expired reports whether the session passed its deadline.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionInfo is the public view of a session returned by the API.
type SessionInfo struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	ItemsInCart    int       `json:"items_in_cart"`
}

// Info snapshots the public session fields. Caller holds the lock.
func (s *Session) Info() SessionInfo {
	items := 0
	for _, qty := range s.Cart {
		items += qty
	}
	return SessionInfo{
		ID:             s.ID,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
		ExpiresAt:      s.ExpiresAt,
		ItemsInCart:    items,
	}
}
