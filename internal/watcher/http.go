package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/pkg/config"
)

// httpWatcher drives a watcher process over its admin socket. Every call
// round-trips; nothing is cached on this side.
type httpWatcher struct {
	client *resty.Client
	logger *zap.Logger
}

func newHTTPWatcher(cfg config.WatcherConfig, logger *zap.Logger) *httpWatcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpWatcher{
		client: resty.New().SetBaseURL(cfg.URL).SetTimeout(timeout),
		logger: logger.Named("watcher"),
	}
}

func (w *httpWatcher) Start(ctx context.Context) error {
	res, err := w.client.R().SetContext(ctx).Post("/control/start")
	if err != nil {
		return fmt.Errorf("watcher start: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("watcher start: %s", res.Status())
	}
	return nil
}

func (w *httpWatcher) Restart(ctx context.Context, scope Scope) error {
	req := w.client.R().SetContext(ctx)
	if scope != "" {
		req.SetQueryParam("scope", string(scope))
	}
	res, err := req.Post("/control/restart")
	if err != nil {
		return fmt.Errorf("watcher restart: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("watcher restart: %s", res.Status())
	}
	w.logger.Info("watcher restarted", zap.String("scope", string(scope)))
	return nil
}

func (w *httpWatcher) ReadConfig(ctx context.Context) ([]json.RawMessage, error) {
	res, err := w.client.R().SetContext(ctx).Get("/control/config")
	if err != nil {
		return nil, fmt.Errorf("read watcher config: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("read watcher config: %s", res.Status())
	}
	var list []json.RawMessage
	if err := json.Unmarshal(res.Body(), &list); err != nil {
		return nil, fmt.Errorf("parse watcher config: %w", err)
	}
	if list == nil {
		list = []json.RawMessage{}
	}
	return list, nil
}

func (w *httpWatcher) UpdateConfig(ctx context.Context, list []json.RawMessage) error {
	if list == nil {
		list = []json.RawMessage{}
	}
	res, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(list).
		Put("/control/config")
	if err != nil {
		return fmt.Errorf("update watcher config: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("update watcher config: %s", res.Status())
	}
	return nil
}
