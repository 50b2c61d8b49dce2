package mem

import (
	"sync"
	"time"
)

// OverviewCache keeps generated trip overviews for a short TTL so a page
// re-render does not re-bill the text model for the same copy.
type OverviewCache interface {
	Set(key string, summary string, ttl time.Duration)

	// Get returns the cached summary for key if not expired.
	Get(key string) (string, bool)
}

type entry struct {
	summary   string
	expiresAt time.Time
}

type Overviews struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewOverviews() *Overviews {
	return &Overviews{
		data: make(map[string]entry),
	}
}

func (s *Overviews) Set(key string, summary string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		summary:   summary,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Overviews) Get(key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return "", false
	}
	return e.summary, true
}
