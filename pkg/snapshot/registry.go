package snapshot

import (
	"Food-Wastage-Management/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout is how long a session may go unused before it is evicted.
const DefaultIdleTimeout = 30 * time.Minute

type (
	// Invalidator is what writers need: drop every cached snapshot.
	Invalidator interface {
		InvalidateAll()
	}

	session struct {
		cache    *Cache
		lastSeen time.Time
	}

	// Registry owns the shared cache used by requests without a session and
	// the caches of sessions issued through NewSession.
	Registry struct {
		mu          sync.Mutex
		repo        SnapshotRepository
		shared      *Cache
		sessions    map[uuid.UUID]*session
		idleTimeout time.Duration
		now         func() time.Time
	}
)

func NewRegistry(repo SnapshotRepository) *Registry {
	return NewRegistryWithIdleTimeout(repo, DefaultIdleTimeout)
}

func NewRegistryWithIdleTimeout(repo SnapshotRepository, idleTimeout time.Duration) *Registry {
	return &Registry{
		repo:        repo,
		shared:      NewCache(repo),
		sessions:    make(map[uuid.UUID]*session),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Shared is the cache of requests that carry no session id. It is never
// registered as a session.
func (r *Registry) Shared() *Cache {
	return r.shared
}

// NewSession issues a session id. Idle sessions are swept first.
func (r *Registry) NewSession() uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	r.sessions[id] = &session{cache: NewCache(r.repo), lastSeen: now}
	return id
}

// Session returns the cache of an issued, unexpired session and refreshes its
// last access time.
func (r *Registry) Session(id uuid.UUID) (*Cache, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := r.now()
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	s.lastSeen = now
	return s.cache, nil
}

func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// InvalidateAll marks the shared cache and every live session dirty. Writes
// are global, so no cache may keep serving the pre-write tables.
func (r *Registry) InvalidateAll() {
	r.shared.Invalidate()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.now())
	for _, s := range r.sessions {
		s.cache.Invalidate()
	}
}

func (r *Registry) expired(s *session, now time.Time) bool {
	return r.idleTimeout > 0 && now.Sub(s.lastSeen) > r.idleTimeout
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}

func ParseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrParseSessionID
	}
	return id, nil
}
