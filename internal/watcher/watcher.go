// Package watcher is the control plane's view of the external monitoring
// process. The watcher owns its configuration store and its live state; this
// package exposes exactly the four operations the API needs and nothing else.
package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/pkg/config"
)

// Scope selects which subset of the watcher's cached state a restart should
// rebuild. The empty scope means a full restart.
type Scope string

const (
	ScopeServers  Scope = "servers"
	ScopeDiscord  Scope = "discord"
	ScopeTelegram Scope = "telegram"
	ScopeSlack    Scope = "slack"
)

// ParseScope validates a flush scope from the request path.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeServers, ScopeDiscord, ScopeTelegram, ScopeSlack:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown flush scope %q", s)
}

// Title returns the scope name capitalized for user-facing messages.
func (s Scope) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Watcher is the capability handed to the dispatcher. Calls block until the
// watcher has completed the operation; errors propagate verbatim to the API
// error envelope. Implementations must tolerate concurrent calls, but the
// dispatcher serializes update-then-restart sequences itself.
type Watcher interface {
	// Start launches the watcher's monitoring loop.
	Start(ctx context.Context) error
	// Restart reloads the watcher's state for the given scope, or all of it
	// when scope is empty.
	Restart(ctx context.Context, scope Scope) error
	// ReadConfig returns the watcher's persisted configuration list. The
	// record shape is owned by the watcher; records pass through opaque.
	ReadConfig(ctx context.Context) ([]json.RawMessage, error)
	// UpdateConfig replaces the watcher's persisted configuration list.
	UpdateConfig(ctx context.Context, list []json.RawMessage) error
}

// New selects a watcher implementation from configuration.
func New(cfg config.WatcherConfig, logger *zap.Logger) (Watcher, error) {
	switch cfg.Type {
	case "http":
		return newHTTPWatcher(cfg, logger), nil
	case "local":
		return newLocalWatcher(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown watcher type %q (must be http or local)", cfg.Type)
	}
}
