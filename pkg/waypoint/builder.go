package waypoint

import (
	"context"
	"slices"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

// PathFromNavs builds the root-first segment path for c and all of its
// ancestors. When component is set it stands in for c's active view; this is
// how the URL of a push that has not happened yet is computed.
//
// The walk ends at the first controller that yields no segment, which is
// normally the root's missing parent.
func (l *Linker) PathFromNavs(c nav.Controller, component *nav.Component, params nav.Params) []*serializer.Segment {
	var segments []*serializer.Segment

	for c != nil {
		if component == nil {
			if stack := stackOf(c); stack != nil {
				if view := stack.Active(); view != nil {
					component, params = view.Component(), view.Params()
				}
			}
		}

		segment := l.serializer.SerializeComponent(component, params)
		component, params = nil, nil
		if segment == nil {
			break
		}
		segments = append(segments, segment)

		if tab, ok := c.(*nav.Tab); ok {
			selector := l.tabSelector(tab)
			segments = append(segments, &serializer.Segment{ID: selector, Name: selector})

			// skip the tab container itself
			c = tab.Parent()
			if c != nil {
				c = c.Parent()
			}
			continue
		}
		c = c.Parent()
	}

	slices.Reverse(segments)
	return segments
}

// CreateURL returns the URL the app would show after pushing the page
// registered as name onto c. With external set the URL is rendered for the host.
func (l *Linker) CreateURL(ctx context.Context, c nav.Controller, name string, params nav.Params, external bool) (string, error) {
	segment := l.serializer.CreateSegmentFromName(name)
	if segment == nil {
		return "", &LookupError{Name: name, Err: ErrInvalidLink}
	}

	component := segment.Component
	if component == nil {
		var err error
		if component, err = l.GetComponentFromName(ctx, name); err != nil {
			return "", err
		}
	}

	browserURL := l.serializer.Serialize(l.PathFromNavs(c, component, params))
	if external {
		return l.location.PrepareExternalURL(browserURL), nil
	}
	return browserURL, nil
}

// ViewID returns the segment id a view of component with params serializes to.
func (l *Linker) ViewID(component *nav.Component, params nav.Params) string {
	if segment := l.serializer.SerializeComponent(component, params); segment != nil {
		return segment.ID
	}
	return ""
}

func stackOf(c nav.Controller) *nav.Nav {
	switch c := c.(type) {
	case *nav.Nav:
		return c
	case *nav.Tab:
		return c.Stack()
	case *nav.Tabs:
		return nil
	}
	return nil
}
