package waypoint

import (
	"regexp"
	"strconv"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
)

var tabIndexPattern = regexp.MustCompile(`^` + constants.TabIndexPrefix + `(\d+)$`)

// tabSelector names a tab in a URL: its explicit URL path, else its formatted
// title, else its position.
func (l *Linker) tabSelector(tab *nav.Tab) string {
	if tab.URLPath != "" {
		return tab.URLPath
	}
	if tab.Title != "" {
		return l.serializer.FormatURLPart(l.titles.Title(tab.Title))
	}
	return constants.TabIndexPrefix + strconv.Itoa(tab.Index())
}

// SelectedTabIndex returns the index of the tab named by selector, or
// fallback when no tab matches.
func (l *Linker) SelectedTabIndex(tabs *nav.Tabs, selector string, fallback int) int {
	if m := tabIndexPattern.FindStringSubmatch(selector); m != nil {
		if index, err := strconv.Atoi(m[1]); err == nil && tabs.GetByIndex(index) != nil {
			return index
		}
	}

	for _, tab := range tabs.Tabs() {
		if tab.URLPath != "" && tab.URLPath == selector {
			return tab.Index()
		}
		if tab.Title != "" && l.serializer.FormatURLPart(l.titles.Title(tab.Title)) == selector {
			return tab.Index()
		}
	}
	return fallback
}
