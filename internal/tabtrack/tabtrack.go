// Package tabtrack remembers which tabs already had a visit counted.
//
// The set lives for the whole process and starts empty. Navigation never removes an
// entry; only a closed tab (Forget) or an explicit age-based sweep (EvictOlderThan) does.
package tabtrack

import (
	"sync"
	"time"
)

// Tracker is a set of tab ids with the time each was first counted.
type Tracker struct {
	mu   sync.Mutex
	seen map[int64]time.Time
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{seen: make(map[int64]time.Time)}
}

// MarkSeen records tabID and returns true if it was not tracked yet.
// Safe for concurrent use; exactly one caller wins for a given id.
func (t *Tracker) MarkSeen(tabID int64, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[tabID]; ok {
		return false
	}
	t.seen[tabID] = now
	return true
}

// Seen reports whether tabID is tracked.
func (t *Tracker) Seen(tabID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.seen[tabID]
	return ok
}

// Forget drops tabID. The host never reuses the id of a closed tab.
func (t *Tracker) Forget(tabID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.seen[tabID]
	delete(t.seen, tabID)
	return ok
}

// EvictOlderThan drops entries first seen before cutoff and returns how many were removed.
func (t *Tracker) EvictOlderThan(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, ts := range t.seen {
		if ts.Before(cutoff) {
			delete(t.seen, id)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked tabs.
func (t *Tracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
