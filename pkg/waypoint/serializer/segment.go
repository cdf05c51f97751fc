package serializer

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"

// Segment is one node of a navigation path: the page a single controller
// level shows, and the params it shows it with.
type Segment struct {
	// ID is the view identity within its controller's stack, also the
	// segment's text in the URL.
	ID   string
	Name string
	// Component is nil until the page's link has been resolved.
	Component    *nav.Component
	LoadChildren string
	Data         nav.Params
	// NavID is the controller that claimed this segment during a
	// reconciliation pass. Path building never sets it.
	NavID          string
	DefaultHistory []string
}

// Claim assigns the segment to the controller with id navID. A segment can
// only be claimed once; claiming again with the same id succeeds.
func (s *Segment) Claim(navID string) bool {
	if s.NavID != "" && s.NavID != navID {
		return false
	}
	s.NavID = navID
	return true
}

// IsPage reports whether the segment names a registered page, as opposed to
// a tab selector or an unmatched URL part.
func (s *Segment) IsPage() bool {
	return s.Component != nil || s.LoadChildren != ""
}
