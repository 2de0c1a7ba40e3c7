package telemetry

import (
	"maps"
	"sync"

	"github.com/mkcho/brewstation/internal/models"
)

// Channel is a single-slot latest-value cell. The ingestion loop is the
// only writer; request handlers are the readers. No history is kept.
type Channel struct {
	mu   sync.RWMutex
	snap models.Snapshot
}

// NewChannel creates new Channel instance
func NewChannel() *Channel {
	return &Channel{}
}

// Publish replaces the current snapshot wholesale
func (c *Channel) Publish(snap models.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = snap
}

// Read returns a copy of the current snapshot. The second value is
// false until the first successful publish.
func (c *Channel) Read() (models.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snap == nil {
		return nil, false
	}

	return maps.Clone(c.snap), true
}

// ReadField returns a single reading from the current snapshot
func (c *Channel) ReadField(key string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snap == nil {
		return nil, models.ErrNoSnapshot
	}

	value, ok := c.snap[key]
	if !ok {
		return nil, models.ErrReadingNotFound
	}

	return value, nil
}
