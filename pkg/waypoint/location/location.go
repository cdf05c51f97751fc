// Package location defines the host location a deep linker mirrors the
// navigation tree into, and an in-memory host for headless apps and tests.
package location

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// Location is the host's address bar and history.
type Location interface {
	// Path returns the current location string.
	Path() string
	// Subscribe registers fn for location changes the host originates
	// (back/forward buttons, manual edits). Changes made through Go are not reported.
	Subscribe(fn func(url string)) (unsubscribe func())
	// Go pushes url as a new history entry.
	Go(url string)
	// Back moves one entry back in the host history.
	Back()
	// PrepareExternalURL renders an internal URL the way the host links to it.
	PrepareExternalURL(url string) string
}

type subscriber struct {
	id int
	fn func(url string)
}

// Memory is a Location backed by a slice with a cursor, like a browser tab's
// session history.
type Memory struct {
	entries []string
	pos     int

	strategy constants.LocationStrategy
	baseHref string

	subscribers []subscriber
	nextID      int
}

// NewMemory creates a host whose only history entry is initial.
func NewMemory(initial string) *Memory {
	return &Memory{
		entries: []string{initial},
		pos:     0,
	}
}

// WithStrategy sets how PrepareExternalURL renders URLs.
func (m *Memory) WithStrategy(strategy constants.LocationStrategy, baseHref string) *Memory {
	m.strategy = strategy
	m.baseHref = baseHref
	return m
}

func (m *Memory) Path() string {
	return m.entries[m.pos]
}

func (m *Memory) Subscribe(fn func(url string)) func() {
	m.nextID++
	id := m.nextID
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Go adds url after the current entry, truncating any forward entries.
func (m *Memory) Go(url string) {
	m.entries = append(m.entries[:m.pos+1], url)
	m.pos = len(m.entries) - 1
}

// Back moves one step back and notifies subscribers. It is a no-op at the
// first entry.
func (m *Memory) Back() {
	if m.pos <= 0 {
		return
	}
	m.pos--
	m.notify()
}

// Forward moves one step forward and notifies subscribers.
func (m *Memory) Forward() {
	if m.pos >= len(m.entries)-1 {
		return
	}
	m.pos++
	m.notify()
}

// Navigate simulates the user typing url into the address bar.
func (m *Memory) Navigate(url string) {
	m.Go(url)
	m.notify()
}

// Entries returns the session history, oldest first.
func (m *Memory) Entries() []string {
	return append([]string(nil), m.entries...)
}

// CanGoBack reports whether there is a previous entry.
func (m *Memory) CanGoBack() bool {
	return m.pos > 0
}

func (m *Memory) PrepareExternalURL(url string) string {
	if m.strategy == constants.LocationStrategyHash {
		return "#" + url
	}
	if m.baseHref == "" {
		return url
	}
	return strings.TrimSuffix(m.baseHref, "/") + url
}

func (m *Memory) notify() {
	url := m.Path()
	subs := append([]subscriber(nil), m.subscribers...)
	for _, s := range subs {
		s.fn(url)
	}
}
