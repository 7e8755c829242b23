// Package middleware provides the gin middleware shared by the control
// plane's routers: the bearer-token gate and request logging.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/internal/api"
	"github.com/gswatch/watcher-control/internal/btoken"
)

// TokenHeader is the header the companion UI sends its bearer token in.
const TokenHeader = "x-btoken"

// BTokenAuth gates the protected API surface behind the self-certifying
// bearer token. The status split is deliberate and load-bearing:
//   - empty configured secret: the whole surface is disabled, 400
//   - header absent: generic invalid request, 400
//   - header present but invalid: 401
func BTokenAuth(secret string, debug bool, clock clockwork.Clock, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			api.RenderError(c, debug, http.StatusBadRequest, api.ErrInvalidRequest)
			return
		}

		token := c.GetHeader(TokenHeader)
		if token == "" {
			api.RenderError(c, debug, http.StatusBadRequest, api.ErrInvalidRequest)
			return
		}

		if !btoken.Validate(token, secret, clock.Now()) {
			logger.Warn("rejected bearer token",
				zap.String("path", c.Request.URL.Path),
			)
			api.RenderError(c, debug, http.StatusUnauthorized, api.ErrUnauthorized)
			return
		}

		c.Next()
	}
}

// Logger returns a gin middleware for logging
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
