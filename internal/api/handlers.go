package api

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/internal/games"
	"github.com/gswatch/watcher-control/internal/watcher"
	"github.com/gswatch/watcher-control/pkg/config"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	cfg     *config.Config
	watcher watcher.Watcher
	logger  *zap.Logger

	// updateMu serializes the update-config-then-restart pair so two
	// concurrent POSTs cannot interleave their side effects.
	updateMu sync.Mutex
}

// NewHandlers creates a new Handlers instance
func NewHandlers(cfg *config.Config, w watcher.Watcher, logger *zap.Logger) *Handlers {
	return &Handlers{
		cfg:     cfg,
		watcher: w,
		logger:  logger.Named("handlers"),
	}
}

// Ping handles the public liveness probe.
func (h *Handlers) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// Games handles the public capability enumeration. The payload shape mirrors
// a JSON-schema enum so UIs can feed it straight into a select widget.
func (h *Handlers) Games(c *gin.Context) {
	ids, titles := games.Enum()
	c.Header("Cache-Control", "max-age=0")

	body := gin.H{
		"enum": ids,
		"options": gin.H{
			"enum_titles": titles,
		},
	}
	if h.cfg.Auth.Debug {
		c.IndentedJSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// Features reports version identifiers and which downstream integrations
// have a secret configured. Presence only, never the values.
func (h *Handlers) Features(c *gin.Context) {
	Render(c, h.cfg.Auth.Debug, http.StatusOK, Response{
		Versions: Versions(),
		Services: map[string]bool{
			"steam":    h.cfg.Integrations.SteamWebAPIKey != "",
			"discord":  h.cfg.Integrations.DiscordBotToken != "",
			"telegram": h.cfg.Integrations.TelegramBotToken != "",
			"slack":    h.cfg.Integrations.SlackBotToken != "",
		},
		Debug: h.cfg.Auth.Debug,
	})
}

// Config dispatches by method: GET reads the watcher's configuration list,
// POST replaces it and restarts the watcher. Anything else is invalid.
func (h *Handlers) Config(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.configRead(c)
	case http.MethodPost:
		h.configReplace(c)
	default:
		RenderError(c, h.cfg.Auth.Debug, http.StatusBadRequest, ErrInvalidRequest)
	}
}

func (h *Handlers) configRead(c *gin.Context) {
	list, err := h.watcher.ReadConfig(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if list == nil {
		list = []json.RawMessage{}
	}
	Render(c, h.cfg.Auth.Debug, http.StatusOK, Response{Config: list})
}

func (h *Handlers) configReplace(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Falsy bodies (null, false, 0, "") fall back to the empty list, a
	// contract the companion UI relies on. A parse error is still an
	// error, never an empty list.
	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		h.fail(c, err)
		return
	}
	list := []json.RawMessage{}
	if !falsy(parsed) {
		if err := json.Unmarshal(body, &list); err != nil {
			h.fail(c, err)
			return
		}
	}

	h.updateMu.Lock()
	defer h.updateMu.Unlock()

	if err := h.watcher.UpdateConfig(c.Request.Context(), list); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.watcher.Restart(c.Request.Context(), ""); err != nil {
		h.fail(c, err)
		return
	}

	Render(c, h.cfg.Auth.Debug, http.StatusOK, Response{
		Message: "Configuration updated. Watcher restarted.",
	})
}

// Flush restarts one scoped subset of the watcher's cached state. The scope
// comes from the path; unknown scopes are invalid requests, not 404s.
func (h *Handlers) Flush(c *gin.Context) {
	scope, err := watcher.ParseScope(c.Param("scope"))
	if err != nil {
		RenderError(c, h.cfg.Auth.Debug, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := h.watcher.Restart(c.Request.Context(), scope); err != nil {
		h.fail(c, err)
		return
	}

	Render(c, h.cfg.Auth.Debug, http.StatusOK, Response{
		Message: "🗑️ " + scope.Title() + " data flushed.",
	})
}

// falsy mirrors the loose truthiness of the legacy config uploader: null,
// false, zero and the empty string all mean "no configuration".
func falsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

// fail surfaces a downstream error: 500 with the message text and nothing
// else. No stack traces or internals leave the process.
func (h *Handlers) fail(c *gin.Context, err error) {
	h.logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	RenderError(c, h.cfg.Auth.Debug, http.StatusInternalServerError, err.Error())
}
