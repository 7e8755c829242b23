package watcher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/pkg/config"
)

// fakeAdmin records calls made against the watcher admin socket.
type fakeAdmin struct {
	config   []byte
	restarts []string
	starts   int
	fail     bool
}

func (f *fakeAdmin) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /control/start", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		f.starts++
	})
	mux.HandleFunc("POST /control/restart", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		f.restarts = append(f.restarts, r.URL.Query().Get("scope"))
	})
	mux.HandleFunc("GET /control/config", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(f.config)
	})
	mux.HandleFunc("PUT /control/config", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.config = body
	})
	return mux
}

func newTestHTTPWatcher(t *testing.T, admin *fakeAdmin) *httpWatcher {
	t.Helper()
	srv := httptest.NewServer(admin.handler())
	t.Cleanup(srv.Close)
	cfg := config.WatcherConfig{Type: "http", URL: srv.URL, TimeoutSeconds: 5}
	return newHTTPWatcher(cfg, zap.NewNop())
}

func TestHTTPWatcherStart(t *testing.T) {
	admin := &fakeAdmin{}
	w := newTestHTTPWatcher(t, admin)

	require.NoError(t, w.Start(context.Background()))
	assert.Equal(t, 1, admin.starts)
}

func TestHTTPWatcherRestartScopes(t *testing.T) {
	admin := &fakeAdmin{}
	w := newTestHTTPWatcher(t, admin)
	ctx := context.Background()

	require.NoError(t, w.Restart(ctx, ScopeTelegram))
	require.NoError(t, w.Restart(ctx, ""))

	assert.Equal(t, []string{"telegram", ""}, admin.restarts)
}

func TestHTTPWatcherConfigRoundTrip(t *testing.T) {
	admin := &fakeAdmin{config: []byte(`[]`)}
	w := newTestHTTPWatcher(t, admin)
	ctx := context.Background()

	list, err := w.ReadConfig(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	in := []json.RawMessage{json.RawMessage(`{"host":"h","port":1}`)}
	require.NoError(t, w.UpdateConfig(ctx, in))

	list, err = w.ReadConfig(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"host":"h","port":1}`, string(list[0]))
}

func TestHTTPWatcherReadConfigNullBody(t *testing.T) {
	admin := &fakeAdmin{config: []byte(`null`)}
	w := newTestHTTPWatcher(t, admin)

	list, err := w.ReadConfig(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestHTTPWatcherPropagatesErrors(t *testing.T) {
	admin := &fakeAdmin{fail: true}
	w := newTestHTTPWatcher(t, admin)
	ctx := context.Background()

	assert.Error(t, w.Start(ctx))
	assert.Error(t, w.Restart(ctx, ScopeServers))
	_, err := w.ReadConfig(ctx)
	assert.Error(t, err)
	assert.Error(t, w.UpdateConfig(ctx, nil))
}
