package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/pkg/config"
)

// localWatcher keeps the configuration list in a JSON file and treats
// restart requests as log-only events. It exists for development and tests,
// where no watcher process is running.
type localWatcher struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func newLocalWatcher(cfg config.WatcherConfig, logger *zap.Logger) *localWatcher {
	return &localWatcher{
		path:   cfg.Path,
		logger: logger.Named("watcher"),
	}
}

func (w *localWatcher) Start(ctx context.Context) error {
	w.logger.Info("local watcher started", zap.String("path", w.path))
	return nil
}

func (w *localWatcher) Restart(ctx context.Context, scope Scope) error {
	w.logger.Info("local watcher restart", zap.String("scope", string(scope)))
	return nil
}

func (w *localWatcher) ReadConfig(ctx context.Context) ([]json.RawMessage, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read watcher config: %w", err)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse watcher config: %w", err)
	}
	if list == nil {
		list = []json.RawMessage{}
	}
	return list, nil
}

func (w *localWatcher) UpdateConfig(ctx context.Context, list []json.RawMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if list == nil {
		list = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watcher config: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o600); err != nil {
		return fmt.Errorf("write watcher config: %w", err)
	}
	return nil
}
