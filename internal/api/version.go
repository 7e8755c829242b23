// Package api provides the HTTP handlers and response envelope for the
// watcher control plane.
package api

import "github.com/gswatch/watcher-control/internal/games"

// ServiceName is the key this service reports itself under in /features.
const ServiceName = "watcher-control"

// Version is the control-plane release. Overridable at build time via
// -ldflags "-X .../internal/api.Version=...".
var Version = "2.1.0"

// Versions returns the version identifiers reported by /features.
func Versions() map[string]string {
	return map[string]string{
		ServiceName:  Version,
		"gamelookup": games.Version,
	}
}
