// Package serializer maps between location strings and navigation segments.
//
// A Serializer is built from a set of Links. Parsing walks the URL parts and
// lets every link claim the runs of parts its pattern matches, most specific
// link first; parts no link claims become bare segments (tab selectors, for
// example). Serializing joins segment ids with "/".
package serializer

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
)

// Serializer converts between URLs and segment paths for a fixed set of links.
type Serializer struct {
	links []*Link
}

// New normalizes links and orders them by specificity. The links are owned by
// the serializer afterwards.
func New(links []*Link) *Serializer {
	sorted := make([]*Link, 0, len(links))
	for _, l := range links {
		if l == nil {
			continue
		}
		l.normalize()
		sorted = append(sorted, l)
	}
	slices.SortStableFunc(sorted, compareLinks)
	return &Serializer{links: sorted}
}

// Links returns the registered links, most specific first.
func (s *Serializer) Links() []*Link {
	return append([]*Link(nil), s.links...)
}

// Parse splits a URL into segments, ignoring any query string or fragment.
func (s *Serializer) Parse(browserURL string) []*Segment {
	u := strings.TrimPrefix(browserURL, "/")
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if u == "" {
		return nil
	}
	return parseURLParts(strings.Split(u, "/"), s.links)
}

// Serialize joins segment ids into a URL.
func (s *Serializer) Serialize(path []*Segment) string {
	ids := make([]string, len(path))
	for i, seg := range path {
		ids[i] = seg.ID
	}
	return "/" + strings.Join(ids, "/")
}

// LinkFromName returns the link registered under name, or nil.
func (s *Serializer) LinkFromName(name string) *Link {
	for _, l := range s.links {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// LinkFromComponent returns the first link showing component, or nil.
func (s *Serializer) LinkFromComponent(component *nav.Component) *Link {
	if component == nil {
		return nil
	}
	for _, l := range s.links {
		if l.Component == component {
			return l
		}
	}
	return nil
}

// CreateSegmentFromName builds a param-less segment for a registered name.
func (s *Serializer) CreateSegmentFromName(name string) *Segment {
	if l := s.LinkFromName(name); l != nil {
		return createSegment(l, nil)
	}
	return nil
}

// CreateSegmentFromComponent builds a param-less segment for a registered component.
func (s *Serializer) CreateSegmentFromComponent(component *nav.Component) *Segment {
	if l := s.LinkFromComponent(component); l != nil {
		return createSegment(l, nil)
	}
	return nil
}

// SerializeComponent builds the segment for a view of component with params,
// or nil when no link shows component.
func (s *Serializer) SerializeComponent(component *nav.Component, params nav.Params) *Segment {
	if component == nil {
		return nil
	}
	if l := findLinkByComponentData(s.links, component, params); l != nil {
		return createSegment(l, params)
	}
	return nil
}

// FormatURLPart turns a title into a URL path part.
func (s *Serializer) FormatURLPart(title string) string {
	return FormatURLPart(title)
}

func createSegment(l *Link, params nav.Params) *Segment {
	parts := l.parts
	if len(params) > 0 {
		parts = slices.Clone(parts)
		for i, part := range parts {
			if !isDataPart(part) {
				continue
			}
			if v, ok := params[part[1:]]; ok {
				parts[i] = url.PathEscape(fmt.Sprint(v))
			}
		}
	}

	return &Segment{
		ID:             strings.Join(parts, "/"),
		Name:           l.Name,
		Component:      l.Component,
		LoadChildren:   l.LoadChildren,
		Data:           params,
		DefaultHistory: slices.Clone(l.DefaultHistory),
	}
}

// findLinkByComponentData picks, among the links for component, the one whose
// data keys cover the most params. Views without params never match a link
// that needs them.
func findLinkByComponentData(links []*Link, component *nav.Component, params nav.Params) *Link {
	var found *Link
	foundMatches := -1

	for _, l := range links {
		if l.Component != component {
			continue
		}

		matches := 0
		if len(params) > 0 {
			for key := range params {
				if l.dataKeys[key] {
					matches++
				}
			}
		} else if l.dataLen > 0 {
			continue
		}

		if matches >= foundMatches {
			found = l
			foundMatches = matches
		}
	}
	return found
}

func parseURLParts(urlParts []string, links []*Link) []*Segment {
	segments := make([]*Segment, len(urlParts))
	used := make([]bool, len(urlParts))

	for _, l := range links {
		if len(l.parts) <= len(urlParts) {
			fillMatchedURLParts(segments, used, urlParts, l)
		}
	}

	out := make([]*Segment, 0, len(urlParts))
	for i, seg := range segments {
		switch {
		case seg != nil:
			out = append(out, seg)
		case !used[i]:
			out = append(out, &Segment{ID: urlParts[i], Name: urlParts[i]})
		}
	}
	return out
}

func fillMatchedURLParts(segments []*Segment, used []bool, urlParts []string, l *Link) {
	for i := range urlParts {
		j := i
		for _, part := range l.parts {
			if j >= len(urlParts) || used[j] || !isPartMatch(urlParts[j], part) {
				break
			}
			j++
		}
		if j-i != len(l.parts) {
			continue
		}

		matched := slices.Clone(urlParts[i:j])
		for k := i; k < j; k++ {
			used[k] = true
		}
		segments[i] = &Segment{
			ID:             strings.Join(matched, "/"),
			Name:           l.Name,
			Component:      l.Component,
			LoadChildren:   l.LoadChildren,
			Data:           matchedData(matched, l),
			DefaultHistory: slices.Clone(l.DefaultHistory),
		}
	}
}

func matchedData(matched []string, l *Link) nav.Params {
	var data nav.Params
	for i, part := range l.parts {
		if !isDataPart(part) {
			continue
		}
		if data == nil {
			data = nav.Params{}
		}
		value, err := url.PathUnescape(matched[i])
		if err != nil {
			value = matched[i]
		}
		data[part[1:]] = value
	}
	return data
}
