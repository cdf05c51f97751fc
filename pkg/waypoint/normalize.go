package waypoint

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// NormalizeURL gives a location string exactly one leading slash and no
// trailing slash, except for the root "/" itself. Surrounding whitespace and
// every leading or trailing slash are removed, not just one, so
// NormalizeURL("a//") is "/a" and normalizing twice changes nothing.
func NormalizeURL(browserURL string) string {
	u := strings.TrimSpace(browserURL)
	u = strings.TrimLeft(u, "/")
	u = strings.TrimRight(u, "/")
	if u == "" {
		return constants.RootURL
	}
	return "/" + u
}
