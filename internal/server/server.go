// Package server assembles the control-plane HTTP surface: public probes,
// the token-gated API, and static UI assets.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/internal/api"
	"github.com/gswatch/watcher-control/internal/metrics"
	"github.com/gswatch/watcher-control/internal/watcher"
	"github.com/gswatch/watcher-control/pkg/config"
	"github.com/gswatch/watcher-control/pkg/middleware"
)

// Server is the control-plane HTTP server.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	handlers *api.Handlers
	router   *gin.Engine
	srv      *http.Server
}

// New builds the server and its router. The watcher capability and clock are
// injected so tests can run against fakes.
func New(cfg *config.Config, w watcher.Watcher, clock clockwork.Clock, logger *zap.Logger) *Server {
	if cfg.Auth.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		handlers: api.NewHandlers(cfg, w, logger),
	}
	s.router = s.buildRouter(clock)
	s.srv = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) buildRouter(clock clockwork.Clock) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(s.logger))

	reg := metrics.NewRegistry()
	router.Use(metrics.Middleware(metrics.NewHTTPMetrics(reg)))

	router.Use(cors.Default())

	// Public surface: liveness, capability enumeration, metrics.
	router.GET("/ping", s.handlers.Ping)
	router.GET("/gamedig-games", s.handlers.Games)
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	// Protected surface. The gate alone decides 400 vs 401; handlers only
	// ever see authenticated requests.
	protected := router.Group("/")
	protected.Use(middleware.BTokenAuth(s.cfg.Auth.Secret, s.cfg.Auth.Debug, clock, s.logger))
	{
		protected.GET("/features", s.handlers.Features)
		protected.Any("/config", s.handlers.Config)
		protected.Any("/flush/:scope", s.handlers.Flush)
	}

	// Everything else is either a UI asset or an invalid request.
	router.NoRoute(s.serveAsset)

	return router
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("control plane listening", zap.String("address", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down control plane")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
