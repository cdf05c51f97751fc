package waypoint

import (
	"context"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

// LoadNavFromPath reconciles c and its active descendants against the
// current segment path, top-down. Each controller finishes its own
// reconciliation before its active child is visited. None of the changes are
// reported back as location updates.
//
// A controller with no segment of its own ends the walk without error. A
// segment whose page cannot be resolved ends it with a LookupError; the
// controllers above it keep their reconciled state.
func (l *Linker) LoadNavFromPath(ctx context.Context, c nav.Controller) error {
	for c != nil {
		loaded, err := l.loadViewFromSegment(ctx, c)
		if err != nil {
			return err
		}
		if !loaded {
			return nil
		}
		c = c.ActiveChild()
	}
	return nil
}

func (l *Linker) loadViewFromSegment(ctx context.Context, c nav.Controller) (bool, error) {
	segment := l.InitNav(c)
	if segment == nil {
		l.logger.Debug("no segment for controller", "nav", c.ID(), "kind", c.Kind().GetName())
		return false, nil
	}

	switch c := c.(type) {
	case *nav.Tabs:
		index := l.SelectedTabIndex(c, segment.Name, 0)
		return true, c.Select(ctx, index, nav.Silent())
	case *nav.Nav:
		return true, l.loadStack(ctx, c, segment)
	case *nav.Tab:
		return true, l.loadStack(ctx, c.Stack(), segment)
	}
	return false, nil
}

// loadStack makes the view for segment the top of stack: nothing to do when
// it already is, pop back to it when it is further down, push it otherwise.
func (l *Linker) loadStack(ctx context.Context, stack *nav.Nav, segment *serializer.Segment) error {
	component, err := l.segmentComponent(ctx, segment)
	if err != nil {
		return err
	}

	top := stack.Length() - 1
	for i := top; i >= 0; i-- {
		view := stack.GetByIndex(i)
		if view == nil || view.ID() != segment.ID {
			continue
		}
		if i == top {
			return nil
		}
		l.logger.Debug("deep link pop to", "nav", stack.ID(), "view", segment.ID)
		return stack.PopTo(ctx, view, nav.Silent())
	}

	l.logger.Debug("deep link push", "nav", stack.ID(), "view", segment.ID)
	opts := nav.Silent()
	opts.ID = segment.ID
	return stack.Push(ctx, component, segment.Data, opts)
}

// InitNav returns the segment that belongs to c and claims it for c. The root
// controller owns the first segment; any other controller owns the segment
// right after the one its parent claimed.
func (l *Linker) InitNav(c nav.Controller) *serializer.Segment {
	path := l.segments
	if c == nil || len(path) == 0 {
		return nil
	}

	parent := c.Parent()
	if parent == nil {
		if path[0].Claim(c.ID()) {
			return path[0]
		}
		return nil
	}

	for i := 1; i < len(path); i++ {
		if path[i-1].NavID == parent.ID() {
			if path[i].Claim(c.ID()) {
				return path[i]
			}
			return nil
		}
	}
	return nil
}

// Mount restores the current deep link into a freshly attached controller.
func (l *Linker) Mount(ctx context.Context, c nav.Controller) (bool, error) {
	segment := l.InitNav(c)
	if segment == nil {
		return false, nil
	}

	var handled bool
	var err error
	switch c := c.(type) {
	case *nav.Tabs:
		index := l.SelectedTabIndex(c, segment.Name, 0)
		handled, err = true, c.Select(ctx, index, nav.Silent())
	case *nav.Nav:
		handled, err = l.mountStack(ctx, c, segment)
	case *nav.Tab:
		handled, err = l.mountStack(ctx, c.Stack(), segment)
	}
	if err != nil {
		l.logger.Error("deep link not restored on mount", "nav", c.ID(), "segment", segment.ID, "error", err)
	}
	return handled, err
}

func (l *Linker) mountStack(ctx context.Context, stack *nav.Nav, segment *serializer.Segment) (bool, error) {
	if !segment.IsPage() {
		return false, nil
	}

	views, err := l.InitViews(ctx, segment)
	if err != nil {
		return false, err
	}
	l.logger.Debug("deep link mount", "nav", stack.ID(), "view", segment.ID, "views", len(views))
	return true, stack.SetPages(ctx, views, nav.Silent())
}

// InitViews builds the views a deep-linked segment starts with: its default
// history, oldest first, followed by the segment's own view.
func (l *Linker) InitViews(ctx context.Context, segment *serializer.Segment) ([]*nav.View, error) {
	component, err := l.segmentComponent(ctx, segment)
	if err != nil {
		return nil, err
	}

	view := nav.NewView(component, segment.Data)
	view.SetID(segment.ID)

	ancestors, err := l.historyViews(ctx, segment.DefaultHistory, map[string]bool{segment.Name: true})
	if err != nil {
		return nil, err
	}
	return append(ancestors, view), nil
}

// historyViews resolves default history names into views, expanding each
// page's own default history in front of it.
func (l *Linker) historyViews(ctx context.Context, names []string, seen map[string]bool) ([]*nav.View, error) {
	var views []*nav.View
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		link := l.serializer.LinkFromName(name)
		if link == nil {
			return nil, &LookupError{Name: name, Err: ErrInvalidLink}
		}
		component, err := l.GetNavLinkComponent(ctx, link)
		if err != nil {
			return nil, err
		}

		ancestors, err := l.historyViews(ctx, link.DefaultHistory, seen)
		if err != nil {
			return nil, err
		}
		views = append(views, ancestors...)
		views = append(views, nav.NewView(component, nil))
	}
	return views, nil
}

// Resolve looks up a page by name for nav.Nav.PushName.
func (l *Linker) Resolve(ctx context.Context, name string) (*nav.Component, error) {
	return l.GetComponentFromName(ctx, name)
}

// GetComponentFromName resolves the page registered as name.
func (l *Linker) GetComponentFromName(ctx context.Context, name string) (*nav.Component, error) {
	link := l.serializer.LinkFromName(name)
	if link == nil {
		return nil, &LookupError{Name: name, Err: ErrInvalidLink}
	}
	return l.GetNavLinkComponent(ctx, link)
}

// GetNavLinkComponent returns the link's component, lazily loading and
// caching it when the link only names a module.
func (l *Linker) GetNavLinkComponent(ctx context.Context, link *serializer.Link) (*nav.Component, error) {
	if link.Component != nil {
		return link.Component, nil
	}
	if link.LoadChildren == "" {
		return nil, &LookupError{Name: link.Name, Err: ErrInvalidLink}
	}
	if l.modules == nil {
		return nil, &LookupError{Name: link.Name, Err: ErrNoModuleLoader}
	}

	module, err := l.modules.Load(ctx, link.LoadChildren)
	if err != nil {
		return nil, &LookupError{Name: link.Name, Err: err}
	}
	l.logger.Debug("lazy page loaded", "link", link.Name, "module", link.LoadChildren)
	link.Component = module.Component
	return module.Component, nil
}

func (l *Linker) segmentComponent(ctx context.Context, segment *serializer.Segment) (*nav.Component, error) {
	if segment.Component != nil {
		return segment.Component, nil
	}

	component, err := l.GetComponentFromName(ctx, segment.Name)
	if err != nil {
		return nil, err
	}
	segment.Component = component
	return component, nil
}
