package nav

import (
	"context"
	"fmt"
)

// TabConfig declares one tab of a Tabs container.
type TabConfig struct {
	Root   *Component
	Params Params
	// URLPath is the explicit selector for this tab in a URL.
	URLPath string
	// Title is the tab's label; formatted into a selector when URLPath is empty.
	Title string
}

// Tabs is a container of Tab stacks with one selected at a time.
type Tabs struct {
	id     string
	app    *App
	parent Controller

	tabs     []*Tab
	selected int
	initial  int
}

// Tab is a stack living inside a Tabs container.
type Tab struct {
	Nav

	URLPath string
	Title   string

	index   int
	mounted bool
}

// NewTabs creates a detached tab container. The first tab is selected unless
// deep-linked state says otherwise.
func (a *App) NewTabs(configs ...TabConfig) *Tabs {
	t := &Tabs{
		id:       nextID("t"),
		app:      a,
		selected: -1,
	}
	for i, cfg := range configs {
		tab := &Tab{
			URLPath: cfg.URLPath,
			Title:   cfg.Title,
			index:   i,
		}
		tab.Nav = Nav{
			id:         nextID("n"),
			app:        a,
			parent:     t,
			root:       cfg.Root,
			rootParams: cfg.Params,
		}
		tab.Nav.self = tab
		t.tabs = append(t.tabs, tab)
	}
	return t
}

// WithSelected sets the tab selected when no deep-linked state applies.
func (t *Tabs) WithSelected(index int) *Tabs {
	t.initial = index
	return t
}

func (t *Tabs) ID() string         { return t.id }
func (t *Tabs) Kind() Kind         { return KindTabs }
func (t *Tabs) Parent() Controller { return t.parent }
func (t *Tabs) App() *App          { return t.app }
func (t *Tabs) controller()        {}

// ActiveChild returns the selected tab.
func (t *Tabs) ActiveChild() Controller {
	if tab := t.Selected(); tab != nil {
		return tab
	}
	return nil
}

// Tabs returns the container's tabs in index order.
func (t *Tabs) Tabs() []*Tab {
	out := make([]*Tab, len(t.tabs))
	copy(out, t.tabs)
	return out
}

// GetByIndex returns the tab at index, or nil.
func (t *Tabs) GetByIndex(index int) *Tab {
	if index < 0 || index >= len(t.tabs) {
		return nil
	}
	return t.tabs[index]
}

// Selected returns the selected tab, or nil before the first selection.
func (t *Tabs) Selected() *Tab {
	return t.GetByIndex(t.selected)
}

// SelectedIndex returns the selected tab's index, or -1.
func (t *Tabs) SelectedIndex() int {
	return t.selected
}

// Select shows the tab at index, restoring its stack the first time it is
// shown. A mount error is returned after the tab has fallen back to its root.
func (t *Tabs) Select(ctx context.Context, index int, opts Options) error {
	tab := t.GetByIndex(index)
	if tab == nil {
		return fmt.Errorf("%w: %d", ErrTabNotFound, index)
	}
	if index == t.selected && tab.mounted {
		return nil
	}

	t.selected = index
	if !tab.mounted {
		err := t.app.mount(ctx, tab)
		// a tab left empty by a failed mount is mounted again next time
		tab.mounted = err == nil || tab.Length() > 0
		if err != nil {
			return err
		}
	}

	t.app.navChange(ctx, opts, opts.direction(DirectionSwitch))
	return nil
}

// GoToRoot selects the initial tab and resets it to its root page.
func (t *Tabs) GoToRoot(ctx context.Context, opts Options) error {
	if err := t.Select(ctx, t.initial, opts); err != nil {
		return err
	}
	return t.Selected().GoToRoot(ctx, opts)
}

func (t *Tab) Kind() Kind { return KindTab }

// Stack returns the tab's view stack.
func (t *Tab) Stack() *Nav {
	return &t.Nav
}

// Index is the tab's position in its container.
func (t *Tab) Index() int {
	return t.index
}

// Tabs returns the container the tab belongs to.
func (t *Tab) Tabs() *Tabs {
	tabs, _ := t.parent.(*Tabs)
	return tabs
}
