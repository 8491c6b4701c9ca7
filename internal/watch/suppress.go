package watch

import (
	"sync"
	"time"

	"smartrename/pkg/types"
)

// DefaultSettleWindow is how long after a rename batch finishes its own
// change events are still expected to arrive.
const DefaultSettleWindow = 2 * time.Second

// Suppressor recognises change batches caused by our own renames so a front
// end does not mark its fresh preview stale. Safe for concurrent use.
type Suppressor struct {
	window time.Duration

	mutex   sync.Mutex
	names   map[string]bool
	pending bool
	until   time.Time
}

// NewSuppressor creates a Suppressor. A window <= 0 uses DefaultSettleWindow.
func NewSuppressor(window time.Duration) *Suppressor {
	if window <= 0 {
		window = DefaultSettleWindow
	}
	return &Suppressor{window: window}
}

// Expect registers the names a rename batch is about to touch. Events for them
// are ignored until the window after Settle has passed.
func (s *Suppressor) Expect(pairs []types.RenamePair) {
	names := make(map[string]bool, 2*len(pairs))
	for _, pair := range pairs {
		if pair.IsIdentity() {
			continue
		}
		names[pair.Current] = true
		names[pair.Proposed] = true
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.names = names
	s.pending = true
}

// Settle marks the rename batch finished and starts the window.
func (s *Suppressor) Settle() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending = false
	s.until = time.Now().Add(s.window)
}

// Ignore reports whether every name in c was touched by the last rename
// batch and c arrived while the batch ran or within the window after it.
func (s *Suppressor) Ignore(c Change) bool {
	at := c.Timestamp
	if at.IsZero() {
		at = time.Now()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(c.Names) == 0 || len(s.names) == 0 {
		return false
	}
	if !s.pending && at.After(s.until) {
		return false
	}
	for _, name := range c.Names {
		if !s.names[name] {
			return false
		}
	}
	return true
}
