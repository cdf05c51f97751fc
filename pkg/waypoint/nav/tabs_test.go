package nav

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func newTabsApp(t *testing.T) (*App, *Tabs, *recordingLinker) {
	t.Helper()
	home := &Component{Name: "home"}
	settings := &Component{Name: "settings"}
	linker := &recordingLinker{}
	app := NewApp().Use(linker)
	tabs := app.NewTabs(
		TabConfig{Root: home, Title: "Home"},
		TabConfig{Root: settings, URLPath: "settings"},
	)
	if err := app.SetRoot(context.Background(), tabs); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}
	return app, tabs, linker
}

func TestTabsSelectFirstByDefault(t *testing.T) {
	app, tabs, linker := newTabsApp(t)

	if tabs.SelectedIndex() != 0 {
		t.Fatalf("SelectedIndex() = %d, want 0", tabs.SelectedIndex())
	}
	tab := tabs.Selected()
	if app.Active() != Controller(tab) {
		t.Errorf("Active() = %v, want first tab", app.Active())
	}
	if tab.Parent() != Controller(tabs) || tab.Tabs() != tabs {
		t.Error("tab is not parented to its container")
	}
	if tab.Stack().Active().Component().Name != "home" {
		t.Errorf("tab root = %v", tab.Stack().Active().Component())
	}
	if !reflect.DeepEqual(linker.mounted, []Kind{KindTabs, KindTab}) {
		t.Errorf("mounted = %v", linker.mounted)
	}
	if len(linker.changes) != 0 {
		t.Errorf("changes = %v", linker.changes)
	}
}

func TestTabsSelect(t *testing.T) {
	ctx := context.Background()
	_, tabs, linker := newTabsApp(t)

	if err := tabs.Select(ctx, 1, Options{}); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if err := tabs.Select(ctx, 1, Options{}); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if tabs.Selected().Index() != 1 || tabs.Selected().URLPath != "settings" {
		t.Errorf("selected = %+v", tabs.Selected())
	}
	if !reflect.DeepEqual(linker.changes, []Direction{DirectionSwitch}) {
		t.Errorf("changes = %v", linker.changes)
	}

	if err := tabs.Select(ctx, 5, Options{}); !errors.Is(err, ErrTabNotFound) {
		t.Errorf("Select(5) error = %v, want ErrTabNotFound", err)
	}
}

func TestTabsWithSelected(t *testing.T) {
	app := NewApp()
	tabs := app.NewTabs(TabConfig{Title: "A"}, TabConfig{Title: "B"}).WithSelected(1)
	if err := app.SetRoot(context.Background(), tabs); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}
	if tabs.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", tabs.SelectedIndex())
	}
	if got := tabs.Selected().Kind().GetName(); got != "tab" {
		t.Errorf("Kind() = %q", got)
	}
}

func TestTabsGoToRoot(t *testing.T) {
	ctx := context.Background()
	_, tabs, _ := newTabsApp(t)

	_ = tabs.Select(ctx, 1, Silent())
	_ = tabs.Selected().Push(ctx, &Component{Name: "extra"}, nil, Silent())
	_ = tabs.Select(ctx, 0, Silent())
	_ = tabs.Selected().Push(ctx, &Component{Name: "extra"}, nil, Silent())

	if err := tabs.GoToRoot(ctx, Silent()); err != nil {
		t.Fatalf("GoToRoot() error = %v", err)
	}
	tab := tabs.Selected()
	if tab.Index() != 0 || tab.Length() != 1 || tab.Active().Component().Name != "home" {
		t.Errorf("after GoToRoot: tab %d with %d views", tab.Index(), tab.Length())
	}
}

func TestTabsMountErrorFallsBackToRoot(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("download failed")
	settings := &Component{Name: "settings"}
	linker := &recordingLinker{mountErr: boom}
	app := NewApp().Use(linker)
	tabs := app.NewTabs(
		TabConfig{Title: "Empty"},
		TabConfig{Root: settings, URLPath: "settings"},
	)

	if err := app.SetRoot(ctx, tabs); !errors.Is(err, boom) {
		t.Fatalf("SetRoot() error = %v, want %v", err, boom)
	}
	if tabs.SelectedIndex() != 0 || tabs.Selected().Length() != 0 {
		t.Fatalf("first tab = %d with %d views", tabs.SelectedIndex(), tabs.Selected().Length())
	}

	if err := tabs.Select(ctx, 1, Silent()); !errors.Is(err, boom) {
		t.Fatalf("Select(1) error = %v, want %v", err, boom)
	}
	second := tabs.GetByIndex(1)
	if second.Length() != 1 || second.Active().Component() != settings {
		t.Fatalf("second tab did not fall back to its root: %d views", second.Length())
	}

	// the tab that showed its root is not mounted again; the empty one is
	linker.mountErr = nil
	linker.mounted = nil
	if err := tabs.Select(ctx, 1, Silent()); err != nil {
		t.Fatalf("reselect error = %v", err)
	}
	if err := tabs.Select(ctx, 0, Silent()); err != nil {
		t.Fatalf("Select(0) error = %v", err)
	}
	if !reflect.DeepEqual(linker.mounted, []Kind{KindTab}) {
		t.Errorf("mounted = %v, want only the empty tab again", linker.mounted)
	}
	if second.Length() != 1 {
		t.Errorf("second tab has %d views after reselect", second.Length())
	}
}
