// Package nav provides the controller tree that deep links are mirrored from.
//
// A tree is made of three kinds of controllers, all behind the sealed
// Controller interface:
//
//   - Nav: a stack of views. Pushing and popping settle synchronously
//     (or after the configured Transitioner returns).
//   - Tabs: a set of Tab children with exactly one selected.
//   - Tab: a stack of views living inside a Tabs container.
//
// Views whose Component declares a Layout host a nested controller, so a
// page can contain its own Nav or Tabs. The nested controller is attached
// the first time its view becomes active.
//
// # Basic Usage
//
//	list := &nav.Component{Name: "list"}
//	detail := &nav.Component{Name: "detail-page"}
//
//	app := nav.NewApp()
//	root := app.NewNav(list, nil)
//	if err := app.SetRoot(ctx, root); err != nil {
//	    return err
//	}
//
//	// Forward navigation, reported to the linker as "forward"
//	_ = root.Push(ctx, detail, nav.Params{"id": 12}, nav.Options{})
//
//	// Back navigation, reported as "back"
//	_ = root.Pop(ctx, nav.Options{})
//
// # Linking
//
// An App forwards three things to its Linker: freshly attached controllers
// (so deep-linked state can be restored into them), settled transitions
// (so the location can follow), and page name lookups for PushName.
// Operations made with Options.SkipURLUpdate never reach NavChange.
package nav
