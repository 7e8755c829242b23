package api

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope. At most one payload kind is set per
// response; error excludes everything else.
type Response struct {
	Message  string            `json:"message,omitempty"`
	Error    string            `json:"error,omitempty"`
	Versions map[string]string `json:"versions,omitempty"`
	Services map[string]bool   `json:"services,omitempty"`
	Debug    bool              `json:"debug,omitempty"`
	// Config holds the watcher's configuration list. Typed as interface so
	// an empty list still serializes as [] rather than being omitted.
	Config interface{} `json:"config,omitempty"`
}

const (
	// ErrInvalidRequest is the body for every unrecognized path, method or
	// flush scope, and for protected calls made without a token.
	ErrInvalidRequest = "Invalid Request"
	// ErrUnauthorized is the body for a present-but-invalid token.
	ErrUnauthorized = "Unauthorized"
)

// Render writes the envelope with the cache policy all JSON responses share.
// Debug mode pretty-prints for easier eyeballing.
func Render(c *gin.Context, debug bool, status int, resp Response) {
	c.Header("Cache-Control", "max-age=0")
	if debug {
		c.IndentedJSON(status, resp)
		return
	}
	c.JSON(status, resp)
}

// RenderError writes an error envelope and stops the handler chain.
func RenderError(c *gin.Context, debug bool, status int, msg string) {
	Render(c, debug, status, Response{Error: msg})
	c.Abort()
}
