// Package constants defines shared constants and configuration values
// used throughout the waypoint deep linking layer.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar is the environment variable that raises the internal logger to debug.
const DebugEnvVar = "WAYPOINT_DEBUG"

// LogLevelEnvVar is the environment variable holding the application log level.
const LogLevelEnvVar = "WAYPOINT_LOG_LEVEL"

// MaxHistory is the number of location strings the history tracker retains.
const MaxHistory = 30

// RootURL is the normalized location of the app's root state.
const RootURL = "/"

// TabIndexPrefix prefixes the positional tab selector, e.g. "tab-2".
const TabIndexPrefix = "tab-"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// IsDebug returns true if internal debug narration was requested.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != "" || IsDevMode()
}

// LocationStrategy selects how internal URLs are rendered for the host.
type LocationStrategy int

const (
	LocationStrategyPath LocationStrategy = iota // "/base/list/detail/12"
	LocationStrategyHash                         // "#/list/detail/12"
)

func (s LocationStrategy) GetName() string {
	switch s {
	case LocationStrategyPath:
		return "path"
	case LocationStrategyHash:
		return "hash"
	default:
		return "unknown"
	}
}

// ParseLocationStrategy maps a config value to a strategy, defaulting to path.
func ParseLocationStrategy(raw string) LocationStrategy {
	if raw == "hash" {
		return LocationStrategyHash
	}
	return LocationStrategyPath
}
