package watcher

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/pkg/config"
)

func newTestLocalWatcher(t *testing.T) *localWatcher {
	t.Helper()
	cfg := config.WatcherConfig{
		Type: "local",
		Path: filepath.Join(t.TempDir(), "watcher-config.json"),
	}
	return newLocalWatcher(cfg, zap.NewNop())
}

func TestLocalWatcherMissingFileReadsEmpty(t *testing.T) {
	w := newTestLocalWatcher(t)

	list, err := w.ReadConfig(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestLocalWatcherConfigRoundTrip(t *testing.T) {
	w := newTestLocalWatcher(t)
	ctx := context.Background()

	in := []json.RawMessage{
		json.RawMessage(`{"host":"10.0.0.1","port":2302,"type":"arma3"}`),
		json.RawMessage(`{"host":"10.0.0.2","port":27015,"type":"csgo"}`),
	}
	require.NoError(t, w.UpdateConfig(ctx, in))

	out, err := w.ReadConfig(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, string(in[0]), string(out[0]))
	assert.JSONEq(t, string(in[1]), string(out[1]))
}

func TestLocalWatcherReplaceWithEmptyList(t *testing.T) {
	w := newTestLocalWatcher(t)
	ctx := context.Background()

	require.NoError(t, w.UpdateConfig(ctx, []json.RawMessage{json.RawMessage(`{"a":1}`)}))
	require.NoError(t, w.UpdateConfig(ctx, nil))

	out, err := w.ReadConfig(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLocalWatcherRestartIsNoOp(t *testing.T) {
	w := newTestLocalWatcher(t)
	ctx := context.Background()

	assert.NoError(t, w.Start(ctx))
	assert.NoError(t, w.Restart(ctx, ScopeDiscord))
	assert.NoError(t, w.Restart(ctx, ""))
}
