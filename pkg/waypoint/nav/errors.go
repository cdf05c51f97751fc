package nav

import "errors"

var (
	// ErrViewNotFound is returned by PopTo when the view is not in the stack.
	ErrViewNotFound = errors.New("nav: view not in stack")

	// ErrTabNotFound is returned by Select for an index outside the tab list.
	ErrTabNotFound = errors.New("nav: tab index out of range")

	// ErrNoLinker is returned by PushName when the app has no linker to resolve names.
	ErrNoLinker = errors.New("nav: no linker to resolve page names")
)
