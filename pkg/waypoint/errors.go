package waypoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidLink indicates a page name with no registered link, or a link
	// that resolves to neither a component nor a loader.
	ErrInvalidLink = errors.New("invalid link")

	// ErrNoModuleLoader indicates a lazy link was resolved without a module loader.
	ErrNoModuleLoader = errors.New("no module loader for lazy link")

	// ErrNoLocation is returned by New when Options.Location is nil.
	ErrNoLocation = errors.New("no location")
)

// LookupError reports a page that could not be resolved to a component.
// The navigation primitive that asked for the page decides how to surface it.
type LookupError struct {
	Name string // Page name or link name
	Err  error  // Underlying error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("waypoint: %s", e.Name)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsLookupError checks if an error is a page lookup failure.
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}
