package nav

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

var controllerIDs = atomic.NewInt64(0)

func nextID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, controllerIDs.Inc())
}

// App owns the root of a controller tree and the hooks shared by every
// controller in it.
type App struct {
	linker       Linker
	transitioner Transitioner
	root         Controller
}

// NewApp creates an App with no root, no linker and instant transitions.
func NewApp() *App {
	return &App{}
}

// Use sets the linker that controllers report to.
func (a *App) Use(l Linker) *App {
	a.linker = l
	return a
}

// OnTransition sets the function that runs stack transitions.
func (a *App) OnTransition(fn Transitioner) *App {
	a.transitioner = fn
	return a
}

// NewNav creates a detached stack that shows root when it has no deep-linked state.
func (a *App) NewNav(root *Component, params Params) *Nav {
	n := &Nav{
		id:         nextID("n"),
		app:        a,
		root:       root,
		rootParams: params,
	}
	n.self = n
	return n
}

// SetRoot attaches c as the root of the tree and restores its state.
func (a *App) SetRoot(ctx context.Context, c Controller) error {
	a.root = c
	setParent(c, nil)
	return a.mount(ctx, c)
}

// Root returns the root controller, or nil before SetRoot.
func (a *App) Root() Controller {
	return a.root
}

// Active returns the innermost controller currently shown.
func (a *App) Active() Controller {
	c := a.root
	if c == nil {
		return nil
	}
	for {
		child := c.ActiveChild()
		if child == nil {
			return c
		}
		c = child
	}
}

// mount restores c from the linker. When the linker has nothing for c, or
// fails to restore it, c shows its default root page or initial tab; a
// linker error is still returned.
func (a *App) mount(ctx context.Context, c Controller) error {
	var linkErr error
	if a.linker != nil {
		handled, err := a.linker.Mount(ctx, c)
		if err == nil && handled {
			return nil
		}
		linkErr = err
	}

	var err error
	switch c := c.(type) {
	case *Nav:
		err = c.pushRoot(ctx)
	case *Tab:
		err = c.pushRoot(ctx)
	case *Tabs:
		err = c.Select(ctx, c.initial, Silent())
	}
	return errors.Join(linkErr, err)
}

// attachChild creates and mounts the nested controller of v the first time v is shown.
func (a *App) attachChild(ctx context.Context, parent Controller, v *View) error {
	if v == nil || v.child != nil || v.component == nil || v.component.Layout == nil {
		return nil
	}
	child := v.component.Layout(a)
	if child == nil {
		return nil
	}
	v.child = child
	setParent(child, parent)
	return a.mount(ctx, child)
}

func (a *App) animate(ctx context.Context, t Transition) error {
	if a.transitioner == nil {
		return ctx.Err()
	}
	return a.transitioner(ctx, t)
}

func (a *App) navChange(ctx context.Context, opts Options, dir Direction) {
	if opts.SkipURLUpdate || dir == DirectionNone || a.linker == nil {
		return
	}
	a.linker.NavChange(ctx, dir)
}

func (a *App) viewID(v *View) string {
	if a.linker == nil {
		return ""
	}
	return a.linker.ViewID(v.component, v.params)
}

func (a *App) resolve(ctx context.Context, name string) (*Component, error) {
	if a.linker == nil {
		return nil, ErrNoLinker
	}
	return a.linker.Resolve(ctx, name)
}

func setParent(c Controller, parent Controller) {
	switch c := c.(type) {
	case *Nav:
		c.parent = parent
	case *Tab:
		c.parent = parent
	case *Tabs:
		c.parent = parent
	}
}
