package nav

import "context"

// Kind tags the variants of Controller.
type Kind int

const (
	KindNav Kind = iota
	KindTabs
	KindTab
)

func (k Kind) GetName() string {
	switch k {
	case KindNav:
		return "nav"
	case KindTabs:
		return "tabs"
	case KindTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Controller is a node of the navigation tree. The set of implementations is
// closed: *Nav, *Tabs and *Tab.
type Controller interface {
	ID() string
	Kind() Kind
	// Parent is nil for the root controller.
	Parent() Controller
	// ActiveChild is the nested controller currently shown, or nil.
	ActiveChild() Controller
	App() *App

	controller()
}

// Direction describes how a settled transition moved.
type Direction string

const (
	DirectionNone    Direction = ""
	DirectionForward Direction = "forward"
	DirectionBack    Direction = "back"
	DirectionSwitch  Direction = "switch"
)

// Options tunes a single stack or tab operation.
type Options struct {
	Animate bool
	// SkipURLUpdate keeps the operation from being reported to the linker.
	SkipURLUpdate bool
	// ID tags the entering view. Only used by Push.
	ID string
	// Direction overrides the direction reported for the operation.
	Direction Direction
}

// Silent returns options for an unanimated operation that does not touch the URL.
func Silent() Options {
	return Options{SkipURLUpdate: true}
}

func (o Options) direction(fallback Direction) Direction {
	if o.Direction != DirectionNone {
		return o.Direction
	}
	return fallback
}

// Transition describes a stack change about to settle.
type Transition struct {
	Controller Controller
	Entering   *View
	Leaving    *View
	Direction  Direction
	Animate    bool
}

// Transitioner runs a transition, e.g. an animation. It returns once the
// transition has fully completed.
type Transitioner func(ctx context.Context, t Transition) error

// Linker connects a controller tree to the location it is mirrored into.
type Linker interface {
	// Mount restores deep-linked state into a freshly attached controller.
	// It reports false when the controller has no deep-linked state, in
	// which case the controller shows its own root.
	Mount(ctx context.Context, c Controller) (bool, error)

	// NavChange is called after a transition settles.
	NavChange(ctx context.Context, dir Direction)

	// ViewID returns the identity a view of component with params should
	// carry, or "" to let the stack pick one.
	ViewID(component *Component, params Params) string

	// Resolve looks up a component by its registered name.
	Resolve(ctx context.Context, name string) (*Component, error)
}
