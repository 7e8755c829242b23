package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/gswatch/watcher-control/internal/api"
)

// uiDisabledMessage is returned for every asset path while no shared secret
// is configured. Without a secret there is no way to log in, so serving the
// UI would be a dead end.
const uiDisabledMessage = "The web UI is disabled. Set a SECRET to enable it."

// assetExtensions whitelists what the UI directory may serve. Anything else
// is treated as an unknown API path.
var assetExtensions = map[string]bool{
	".html":        true,
	".css":         true,
	".js":          true,
	".mjs":         true,
	".map":         true,
	".json":        true,
	".ico":         true,
	".png":         true,
	".jpg":         true,
	".svg":         true,
	".txt":         true,
	".woff":        true,
	".woff2":       true,
	".webmanifest": true,
}

// serveAsset is the NoRoute handler: recognized asset extensions stream from
// the UI directory. Paths without an asset extension are API requests that
// matched no route, so they get the JSON invalid-request envelope; the
// minimal HTML page is reserved for asset lookups that fail.
func (s *Server) serveAsset(c *gin.Context) {
	path := c.Request.URL.Path

	ext := filepath.Ext(path)
	if !assetExtensions[ext] {
		api.RenderError(c, s.cfg.Auth.Debug, http.StatusBadRequest, api.ErrInvalidRequest)
		return
	}

	if s.cfg.Auth.Secret == "" {
		c.String(http.StatusOK, uiDisabledMessage)
		return
	}

	// Clean with a leading separator so ".." cannot escape the UI dir.
	full := filepath.Join(s.cfg.UI.Dir, filepath.Clean(string(filepath.Separator)+path))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		s.errorPage(c, http.StatusNotFound, "Not Found")
		return
	}

	c.File(full)
}

func (s *Server) errorPage(c *gin.Context, status int, title string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(status, "<!DOCTYPE html><html><head><title>%s</title></head><body><h1>%s</h1></body></html>", title, title)
}
