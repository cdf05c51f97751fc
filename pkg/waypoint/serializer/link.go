package serializer

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
)

// Link registers a page name with the URL segment that shows it.
//
// Segment is a slash separated pattern whose ":key" parts capture view
// params, e.g. "detail/:id". Exactly one of Component or LoadChildren must
// eventually produce a component; LoadChildren is handed to a module loader
// and the result is cached back into Component.
type Link struct {
	Name           string   `toml:"name" yaml:"name"`
	Segment        string   `toml:"segment" yaml:"segment"`
	LoadChildren   string   `toml:"load_children" yaml:"load_children"`
	DefaultHistory []string `toml:"default_history" yaml:"default_history"`

	Component *nav.Component `toml:"-" yaml:"-"`

	parts     []string
	dataKeys  map[string]bool
	staticLen int
	dataLen   int
}

func (l *Link) normalize() {
	if l.Segment == "" {
		l.Segment = l.Name
	}
	l.parts = strings.Split(l.Segment, "/")
	l.dataKeys = make(map[string]bool)
	l.staticLen = 0
	l.dataLen = 0

	countingStatic := true
	for _, part := range l.parts {
		if isDataPart(part) {
			l.dataLen++
			l.dataKeys[part[1:]] = true
			countingStatic = false
		} else if countingStatic {
			l.staticLen++
		}
	}
}

// Parts returns the link's segment split on "/".
func (l *Link) Parts() []string {
	return append([]string(nil), l.parts...)
}

// compareLinks orders links so the most specific pattern is tried first:
// more parts, then more leading static parts, then fewer data parts.
func compareLinks(a, b *Link) int {
	switch {
	case len(a.parts) != len(b.parts):
		return len(b.parts) - len(a.parts)
	case a.staticLen != b.staticLen:
		return b.staticLen - a.staticLen
	default:
		return a.dataLen - b.dataLen
	}
}

func isDataPart(part string) bool {
	return strings.HasPrefix(part, ":")
}

func isPartMatch(urlPart, linkPart string) bool {
	if isDataPart(linkPart) {
		return true
	}
	return urlPart == linkPart
}
