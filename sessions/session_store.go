package session_store

import (
	"log"
	"sync"
	"time"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
)

// In-memory session store. Each visitor gets a private Session holding its
// own catalog copy, cart and filter criteria; entries expire after the
// configured TTL of inactivity.

var (
	mu       sync.RWMutex
	sessions = make(map[string]*models.Session)
	ttl      = 30 * time.Minute
)

// Init sets the session TTL. Call once at startup, before serving.
func Init(sessionTTL time.Duration) {
	if sessionTTL > 0 {
		ttl = sessionTTL
	}
}

// TTL returns the configured session lifetime.
func TTL() time.Duration {
	return ttl
}

// Get returns the live session for id, or nil if unknown or expired.
func Get(id string) *models.Session {
	mu.RLock()
	defer mu.RUnlock()
	sess, ok := sessions[id]
	if !ok || sess.Expired(time.Now()) {
		return nil
	}
	return sess
}

// Create registers a fresh session seeded with the default demo state.
func Create() *models.Session {
	sess := models.NewSession(ttl)

	mu.Lock()
	sessions[sess.ID.String()] = sess
	mu.Unlock()

	log.Printf("[session] created session %s", sess.ID)
	return sess
}

// GetOrCreate resolves id to a live session, falling back to a new one when
// the id is empty, unknown or expired. A stale cookie is not an error; the
// visitor just starts over.
func GetOrCreate(id string) (sess *models.Session, created bool) {
	if id != "" {
		if sess = Get(id); sess != nil {
			return sess, false
		}
	}
	return Create(), true
}

// Delete removes a session outright.
func Delete(id string) {
	mu.Lock()
	delete(sessions, id)
	mu.Unlock()
}

// Count returns the number of stored sessions, expired ones included.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(sessions)
}

// CleanupExpired drops every expired session and returns how many went.
func CleanupExpired() int {
	now := time.Now()

	mu.Lock()
	defer mu.Unlock()

	removed := 0
	for id, sess := range sessions {
		if sess.Expired(now) {
			delete(sessions, id)
			removed++
		}
	}

	if removed > 0 {
		log.Printf("[session] cleaned up %d expired sessions", removed)
	}
	return removed
}

// StartCleanupLoop sweeps expired sessions on the given interval until the
// stop channel closes. Run it from main in its own goroutine.
func StartCleanupLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			CleanupExpired()
		case <-stop:
			return
		}
	}
}

// ResetAll is a test helper: it empties the store.
func ResetAll() {
	mu.Lock()
	sessions = make(map[string]*models.Session)
	mu.Unlock()
}
