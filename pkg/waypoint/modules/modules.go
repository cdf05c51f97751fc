// Package modules resolves lazily loaded pages. A link that names a
// LoadChildren locator instead of a component is handed to a Loader the
// first time it is needed.
package modules

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
)

// ErrUnknownModule is returned for a locator nothing was registered under.
var ErrUnknownModule = errors.New("modules: unknown module")

// Module is the result of loading a locator.
type Module struct {
	Component *nav.Component
}

// Loader loads the module behind a locator.
type Loader interface {
	Load(ctx context.Context, locator string) (Module, error)
}

// LoadFunc produces the component for one locator.
type LoadFunc func(ctx context.Context) (*nav.Component, error)

// Registry is a Loader backed by registered load functions. Each locator is
// loaded at most once at a time; successful loads are cached.
type Registry struct {
	mu      sync.Mutex
	loaders map[string]LoadFunc
	cache   map[string]*nav.Component
	group   singleflight.Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]LoadFunc),
		cache:   make(map[string]*nav.Component),
	}
}

// Register adds the load function for locator.
func (r *Registry) Register(locator string, fn LoadFunc) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[locator] = fn
	delete(r.cache, locator)
	return r
}

// Provide registers an already available component under locator.
func (r *Registry) Provide(locator string, component *nav.Component) *Registry {
	return r.Register(locator, func(context.Context) (*nav.Component, error) {
		return component, nil
	})
}

// Load returns the component registered under locator. A caller whose ctx
// ends stops waiting, but the load keeps running for the other callers and
// the cache.
func (r *Registry) Load(ctx context.Context, locator string) (Module, error) {
	r.mu.Lock()
	if c, ok := r.cache[locator]; ok {
		r.mu.Unlock()
		return Module{Component: c}, nil
	}
	fn, ok := r.loaders[locator]
	r.mu.Unlock()

	if !ok {
		return Module{}, fmt.Errorf("%w: %s", ErrUnknownModule, locator)
	}

	// the shared load outlives any single caller's cancellation
	loadCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(locator, func() (any, error) {
		c, err := fn(loadCtx)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("modules: %s produced no component", locator)
		}

		r.mu.Lock()
		r.cache[locator] = c
		r.mu.Unlock()
		return c, nil
	})

	select {
	case <-ctx.Done():
		return Module{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Module{}, res.Err
		}
		return Module{Component: res.Val.(*nav.Component)}, nil
	}
}
