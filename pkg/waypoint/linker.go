// Package waypoint keeps a navigation tree and a location string in sync.
//
// A Linker listens in two directions. When a stack transition settles, it
// walks the tree from the innermost active controller up to the root,
// serializes the resulting path and pushes it to the host location (or asks
// the host to go back, when the new URL is the previous history entry). When
// the host location changes on its own, it parses the URL into segments and
// reconciles every controller of the tree against them, top-down.
//
// # Basic Usage
//
//	links := []*serializer.Link{
//	    {Name: "list", Component: listPage},
//	    {Name: "detail-page", Segment: "detail/:id", Component: detailPage},
//	}
//
//	app := nav.NewApp()
//	linker, err := waypoint.New(waypoint.Options{
//	    App:      app,
//	    Location: location.NewMemory("/list"),
//	    Links:    links,
//	})
//	if err != nil {
//	    return err
//	}
//	linker.Init(ctx)
//	defer linker.Close()
//
//	err = linker.SetRoot(ctx, app.NewNav(listPage, nil))
package waypoint

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/history"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/location"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/modules"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

// Options configures a Linker.
type Options struct {
	App        *nav.App               // Tree to mirror; a new App is created when nil
	Location   location.Location      // Host location (required)
	Serializer *serializer.Serializer // Takes precedence over Links
	Links      []*serializer.Link     // Links to build a serializer from
	Modules    modules.Loader         // Loader for links with LoadChildren
	Titles     *Titles                // Tab title localization, optional
	Logger     *slog.Logger           // Defaults to the internal logger
	IndexAlias string                 // URL equivalent to the root state, optional
}

// Linker is the deep linker for one navigation tree. It is not safe for
// concurrent use; location callbacks and navigation must run on one goroutine.
type Linker struct {
	app        *nav.App
	location   location.Location
	serializer *serializer.Serializer
	modules    modules.Loader
	titles     *Titles
	logger     *slog.Logger

	history    *history.Tracker
	segments   []*serializer.Segment
	indexAlias string

	ctx         context.Context
	unsubscribe func()
}

// New creates a Linker and registers it with the app.
func New(opts Options) (*Linker, error) {
	if opts.Location == nil {
		return nil, ErrNoLocation
	}

	configureLogging()

	l := &Linker{
		app:        opts.App,
		location:   opts.Location,
		serializer: opts.Serializer,
		modules:    opts.Modules,
		titles:     opts.Titles,
		logger:     opts.Logger,
		indexAlias: opts.IndexAlias,
		ctx:        context.Background(),
	}
	if l.app == nil {
		l.app = nav.NewApp()
	}
	if l.serializer == nil {
		l.serializer = serializer.New(opts.Links)
	}
	if l.logger == nil {
		l.logger = internal.GetInternalLogger()
	}
	l.history = history.NewTracker(func() string {
		return NormalizeURL(l.location.Path())
	})

	l.app.Use(l)
	return l, nil
}

// Init reads the host's current location as the initial deep link and starts
// following location changes. ctx is used for reconciliations triggered by
// the host.
func (l *Linker) Init(ctx context.Context) {
	browserURL := NormalizeURL(l.location.Path())
	l.segments = l.serializer.Parse(browserURL)
	l.history.Push(browserURL)
	l.ctx = ctx

	l.logger.Debug("deep linker init", "url", browserURL, "segments", len(l.segments))

	if l.unsubscribe != nil {
		l.unsubscribe()
	}
	l.unsubscribe = l.location.Subscribe(func(url string) {
		l.urlChange(l.ctx, NormalizeURL(url))
	})
}

// Close stops following location changes.
func (l *Linker) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

// App returns the tree the linker mirrors.
func (l *Linker) App() *nav.App {
	return l.app
}

// Serializer returns the linker's serializer.
func (l *Linker) Serializer() *serializer.Serializer {
	return l.serializer
}

// SetRoot attaches c as the app's root, restoring the initial deep link into
// it. When the app starts at "/", the URL of the resulting state is
// remembered as the index alias.
func (l *Linker) SetRoot(ctx context.Context, c nav.Controller) error {
	err := l.app.SetRoot(ctx, c)
	l.dropUnclaimed()
	if err != nil {
		return err
	}

	if l.indexAlias == "" && l.history.IsCurrent(constants.RootURL) {
		if alias := l.currentURL(); alias != constants.RootURL {
			l.indexAlias = alias
			l.logger.Debug("index alias learned", "alias", alias)
		}
	}
	return nil
}

// IndexAlias returns the URL remembered as equivalent to "/".
func (l *Linker) IndexAlias() string {
	return l.indexAlias
}

// SetIndexAlias sets the URL equivalent to "/".
func (l *Linker) SetIndexAlias(url string) {
	l.indexAlias = NormalizeURL(url)
}

// History returns a copy of the location breadcrumb, oldest first.
func (l *Linker) History() []string {
	return l.history.Entries()
}

// Segments returns the segment path of the last parsed location, cut at the
// first segment no controller claimed.
func (l *Linker) Segments() []*serializer.Segment {
	return append([]*serializer.Segment(nil), l.segments...)
}

// urlChange reacts to a location change the host originated.
func (l *Linker) urlChange(ctx context.Context, browserURL string) {
	if l.history.IsCurrent(browserURL) {
		return
	}

	if l.history.IsPrevious(browserURL) {
		l.logger.Debug("url change: back", "url", browserURL)
		l.history.Pop()
	} else {
		l.logger.Debug("url change: forward", "url", browserURL)
		l.history.Push(browserURL)
	}

	root := l.app.Root()
	if browserURL == constants.RootURL {
		if l.indexAlias == "" {
			if root != nil {
				if err := goToRoot(ctx, root); err != nil {
					l.logger.Error("reset to root failed", "error", err)
				}
			}
			return
		}
		browserURL = l.indexAlias
	}

	l.segments = l.serializer.Parse(browserURL)
	if root == nil {
		return
	}
	if err := l.LoadNavFromPath(ctx, root); err != nil {
		l.logger.Error("deep link not restored", "url", browserURL, "error", err)
	}
	l.dropUnclaimed()
}

// dropUnclaimed cuts the segment path at the first segment no controller
// took, so controllers attached later start from their own root.
func (l *Linker) dropUnclaimed() {
	for i, segment := range l.segments {
		if segment.NavID == "" {
			l.logger.Debug("unclaimed segments dropped", "from", segment.ID, "count", len(l.segments)-i)
			l.segments = l.segments[:i]
			return
		}
	}
}

// NavChange follows a settled transition with the location.
func (l *Linker) NavChange(_ context.Context, dir nav.Direction) {
	if dir == nav.DirectionNone {
		return
	}
	active := l.app.Active()
	if active == nil {
		return
	}

	browserURL := l.serializer.Serialize(l.PathFromNavs(active, nil, nil))
	l.updateLocation(browserURL, dir)
}

func (l *Linker) updateLocation(browserURL string, dir nav.Direction) {
	if l.indexAlias == browserURL {
		browserURL = constants.RootURL
	}

	switch {
	case dir == nav.DirectionBack && l.history.IsPrevious(browserURL):
		l.logger.Debug("location back", "url", browserURL)
		l.history.Pop()
		l.location.Back()
	case !l.history.IsCurrent(browserURL):
		l.logger.Debug("location go", "url", browserURL, "direction", string(dir))
		l.history.Push(browserURL)
		l.location.Go(browserURL)
	}
}

func (l *Linker) currentURL() string {
	active := l.app.Active()
	if active == nil {
		return constants.RootURL
	}
	return l.serializer.Serialize(l.PathFromNavs(active, nil, nil))
}

func goToRoot(ctx context.Context, c nav.Controller) error {
	switch c := c.(type) {
	case *nav.Nav:
		return c.GoToRoot(ctx, nav.Silent())
	case *nav.Tab:
		return c.GoToRoot(ctx, nav.Silent())
	case *nav.Tabs:
		return c.GoToRoot(ctx, nav.Silent())
	}
	return nil
}
