package nav

import (
	"context"
	"fmt"
)

// Nav is a stack of views. The zero value is not usable; create one with App.NewNav.
type Nav struct {
	id     string
	app    *App
	parent Controller
	// self is the controller that owns this stack: the Nav itself, or the
	// Tab it is embedded in.
	self Controller

	root       *Component
	rootParams Params

	views []*View
	ids   int
}

func (n *Nav) ID() string         { return n.id }
func (n *Nav) Kind() Kind         { return KindNav }
func (n *Nav) Parent() Controller { return n.parent }
func (n *Nav) App() *App          { return n.app }
func (n *Nav) controller()        {}

// Stack returns the view stack of the controller.
func (n *Nav) Stack() *Nav {
	return n
}

// ActiveChild returns the controller hosted by the active view.
func (n *Nav) ActiveChild() Controller {
	v := n.Active()
	if v == nil {
		return nil
	}
	return v.child
}

// Active returns the top view, or nil for an empty stack.
func (n *Nav) Active() *View {
	if len(n.views) == 0 {
		return nil
	}
	return n.views[len(n.views)-1]
}

// GetByIndex returns the view at position i from the bottom, or nil.
func (n *Nav) GetByIndex(i int) *View {
	if i < 0 || i >= len(n.views) {
		return nil
	}
	return n.views[i]
}

// Length returns the number of views in the stack.
func (n *Nav) Length() int {
	return len(n.views)
}

// Views returns a copy of the stack, bottom first.
func (n *Nav) Views() []*View {
	out := make([]*View, len(n.views))
	copy(out, n.views)
	return out
}

// Push adds a view of component on top of the stack.
func (n *Nav) Push(ctx context.Context, component *Component, params Params, opts Options) error {
	v := NewView(component, params)
	v.id = opts.ID
	n.assignIDs(n.views, v)

	leaving := n.Active()
	n.views = append(n.views, v)
	return n.settle(ctx, v, leaving, opts.direction(DirectionForward), opts)
}

// PushName resolves a registered page name and pushes it.
func (n *Nav) PushName(ctx context.Context, name string, params Params, opts Options) error {
	component, err := n.app.resolve(ctx, name)
	if err != nil {
		return err
	}
	return n.Push(ctx, component, params, opts)
}

// Pop removes the top view. Popping the last view is a no-op.
func (n *Nav) Pop(ctx context.Context, opts Options) error {
	if len(n.views) < 2 {
		return nil
	}
	return n.PopTo(ctx, n.views[len(n.views)-2], opts)
}

// PopTo discards every view above v. Popping to the current top is a no-op.
func (n *Nav) PopTo(ctx context.Context, v *View, opts Options) error {
	idx := n.indexOf(v)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrViewNotFound, v.ID())
	}
	if idx == len(n.views)-1 {
		return nil
	}

	leaving := n.Active()
	clear(n.views[idx+1:])
	n.views = n.views[:idx+1]
	return n.settle(ctx, v, leaving, opts.direction(DirectionBack), opts)
}

// PopToRoot discards every view above the first one.
func (n *Nav) PopToRoot(ctx context.Context, opts Options) error {
	if len(n.views) == 0 {
		return nil
	}
	return n.PopTo(ctx, n.views[0], opts)
}

// GoToRoot resets the stack to its declared root page, or to its first view
// when it has none.
func (n *Nav) GoToRoot(ctx context.Context, opts Options) error {
	if n.root == nil {
		return n.PopToRoot(ctx, opts)
	}
	if len(n.views) == 1 && n.views[0].component == n.root {
		return nil
	}
	return n.SetRoot(ctx, n.root, n.rootParams, opts)
}

// SetRoot replaces the whole stack with a single view of component.
func (n *Nav) SetRoot(ctx context.Context, component *Component, params Params, opts Options) error {
	v := NewView(component, params)
	v.id = opts.ID
	return n.SetPages(ctx, []*View{v}, opts)
}

// SetPages replaces the whole stack with views, the last one becoming active.
func (n *Nav) SetPages(ctx context.Context, views []*View, opts Options) error {
	if len(views) == 0 {
		return nil
	}

	placed := make([]*View, 0, len(views))
	for _, v := range views {
		n.assignIDs(placed, v)
		placed = append(placed, v)
	}

	leaving := n.Active()
	n.views = placed
	return n.settle(ctx, n.Active(), leaving, opts.direction(DirectionBack), opts)
}

func (n *Nav) pushRoot(ctx context.Context) error {
	if n.root == nil || len(n.views) > 0 {
		return nil
	}
	return n.Push(ctx, n.root, n.rootParams, Silent())
}

func (n *Nav) settle(ctx context.Context, entering, leaving *View, dir Direction, opts Options) error {
	if err := n.app.attachChild(ctx, n.self, entering); err != nil {
		return err
	}

	err := n.app.animate(ctx, Transition{
		Controller: n.self,
		Entering:   entering,
		Leaving:    leaving,
		Direction:  dir,
		Animate:    opts.Animate,
	})
	if err != nil {
		return err
	}

	n.app.navChange(ctx, opts, dir)
	return nil
}

// assignIDs gives v an identity that is unique among existing.
func (n *Nav) assignIDs(existing []*View, v *View) {
	if v.id == "" {
		v.id = n.app.viewID(v)
	}
	if v.id == "" {
		n.ids++
		v.id = fmt.Sprintf("%s-%d", n.id, n.ids)
	}
	for containsID(existing, v.id) {
		n.ids++
		v.id = fmt.Sprintf("%s~%d", v.id, n.ids)
	}
}

func (n *Nav) indexOf(v *View) int {
	for i := len(n.views) - 1; i >= 0; i-- {
		if n.views[i] == v {
			return i
		}
	}
	return -1
}

func containsID(views []*View, id string) bool {
	for _, v := range views {
		if v.id == id {
			return true
		}
	}
	return false
}
