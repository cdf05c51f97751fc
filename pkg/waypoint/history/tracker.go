// Package history keeps the bounded breadcrumb of locations the deep linker
// has shown. It only answers "is this the current entry" and "is this the
// entry right before it"; it is not a full back stack.
package history

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"

// SeedFunc returns the host's present location, used to refill an emptied tracker.
type SeedFunc func() string

// Tracker is an ordered log of location strings, oldest first.
type Tracker struct {
	entries []string
	maxSize int
	seed    SeedFunc
}

// NewTracker creates a tracker holding at most constants.MaxHistory entries.
func NewTracker(seed SeedFunc) *Tracker {
	return NewTrackerWithSize(constants.MaxHistory, seed)
}

func NewTrackerWithSize(maxSize int, seed SeedFunc) *Tracker {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Tracker{
		entries: make([]string, 0, maxSize),
		maxSize: maxSize,
		seed:    seed,
	}
}

// Push appends url unless it is already the current entry.
// The oldest entry is dropped once the tracker is over capacity.
func (t *Tracker) Push(url string) {
	if t.IsCurrent(url) {
		return
	}

	t.entries = append(t.entries, url)

	if len(t.entries) > t.maxSize {
		t.evictOldest()
	}
}

// Pop removes the current entry. An emptied tracker is re-seeded with the
// host's present location.
func (t *Tracker) Pop() {
	if len(t.entries) > 0 {
		t.entries = t.entries[:len(t.entries)-1]
	}

	if len(t.entries) == 0 && t.seed != nil {
		t.Push(t.seed())
	}
}

// IsCurrent reports whether url equals the top entry.
func (t *Tracker) IsCurrent(url string) bool {
	n := len(t.entries)
	return n > 0 && t.entries[n-1] == url
}

// IsPrevious reports whether url equals the entry one before the top.
func (t *Tracker) IsPrevious(url string) bool {
	n := len(t.entries)
	return n > 1 && t.entries[n-2] == url
}

// Current returns the top entry, or "" when empty.
func (t *Tracker) Current() string {
	if len(t.entries) == 0 {
		return ""
	}
	return t.entries[len(t.entries)-1]
}

func (t *Tracker) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the log, oldest first.
func (t *Tracker) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Tracker) evictOldest() {
	over := len(t.entries) - t.maxSize
	copy(t.entries, t.entries[over:])
	t.entries = t.entries[:t.maxSize]
}
