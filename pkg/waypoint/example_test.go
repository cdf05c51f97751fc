package waypoint_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/location"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

// Example demonstrates a stack mirrored into a location, then driven back by it.
func Example() {
	ctx := context.Background()

	list := &nav.Component{Name: "list"}
	detail := &nav.Component{Name: "detail-page"}

	app := nav.NewApp()
	host := location.NewMemory("/list")
	linker, _ := waypoint.New(waypoint.Options{
		App:      app,
		Location: host,
		Links: []*serializer.Link{
			{Name: "list", Component: list},
			{Name: "detail-page", Segment: "detail/:id", Component: detail},
		},
	})
	linker.Init(ctx)
	defer linker.Close()

	root := app.NewNav(list, nil)
	_ = linker.SetRoot(ctx, root)

	_ = root.Push(ctx, detail, nav.Params{"id": 12}, nav.Options{})
	fmt.Println("after push:", host.Path())

	host.Back()
	fmt.Println("after back:", host.Path(), "views:", root.Length())

	host.Navigate("/detail/7")
	fmt.Println("deep link:", root.Active().ID())

	// Output:
	// after push: /detail/12
	// after back: /list views: 1
	// deep link: detail/7
}

// Example_defaultHistory demonstrates a deep link that gets a natural back stack.
func Example_defaultHistory() {
	ctx := context.Background()

	list := &nav.Component{Name: "list"}
	detail := &nav.Component{Name: "detail-page"}

	app := nav.NewApp()
	linker, _ := waypoint.New(waypoint.Options{
		App:      app,
		Location: location.NewMemory("/detail/42"),
		Links: []*serializer.Link{
			{Name: "list", Component: list},
			{Name: "detail-page", Segment: "detail/:id", Component: detail, DefaultHistory: []string{"list"}},
		},
	})
	linker.Init(ctx)

	root := app.NewNav(list, nil)
	_ = linker.SetRoot(ctx, root)

	for _, v := range root.Views() {
		fmt.Println(v.Component(), v.ID())
	}

	// Output:
	// list list
	// detail-page detail/42
}
