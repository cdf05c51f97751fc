package nav

// Params is the opaque data a view was pushed with.
type Params map[string]any

// Component is a page that can be shown in a stack. Components are compared
// by pointer identity.
type Component struct {
	Name string

	// Layout builds the nested controller hosted by each view of this
	// component. Nil for leaf pages.
	Layout func(app *App) Controller
}

func (c *Component) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// View is one instance of a component inside a stack.
type View struct {
	id        string
	component *Component
	params    Params
	child     Controller
}

// NewView creates a view that has not been inserted into a stack yet.
func NewView(component *Component, params Params) *View {
	return &View{
		component: component,
		params:    params,
	}
}

// ID is the view's identity within its stack. It is assigned on insertion
// unless set beforehand with SetID.
func (v *View) ID() string {
	return v.id
}

// SetID tags a view before it is inserted.
func (v *View) SetID(id string) {
	v.id = id
}

func (v *View) Component() *Component {
	return v.component
}

func (v *View) Params() Params {
	return v.params
}

// Child returns the nested controller hosted by this view, if it was attached.
func (v *View) Child() Controller {
	return v.child
}
