package snapshot

import (
	"context"
	"sync"
)

// Cache holds the last loaded snapshot for one session. Invalidate only marks
// it dirty; the reload happens on the next Get.
type Cache struct {
	mu      sync.Mutex
	repo    SnapshotRepository
	current *Snapshot
	version uint64
	dirty   bool
}

func NewCache(repo SnapshotRepository) *Cache {
	return &Cache{repo: repo, dirty: true}
}

// Get returns the cached snapshot, reloading all four tables first when the
// cache is empty or dirty. A failed reload leaves the previous state intact.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && !c.dirty {
		return c.current, nil
	}

	snap, err := c.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	c.version++
	snap.Version = c.version
	c.current = snap
	c.dirty = false
	return snap, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

func (c *Cache) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Version counts successful loads.
func (c *Cache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}
