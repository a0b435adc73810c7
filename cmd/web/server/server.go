package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"goodreads/cmd/web/di"
	"goodreads/internal/adapter/gin/router"
)

// Server wraps the HTTP server serving the web application.
type Server struct {
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance from the dependency container.
func New(c *di.Container) *Server {
	engine := router.SetupRouter(
		c.Handlers,
		c.Sessions,
		c.Config.Session.CookieName,
		c.RateLimitConfig(),
		c.RedisClient.Client,
		c.Logger,
	)

	return &Server{
		Logger: c.Logger,
		HTTP: &http.Server{
			Addr:              ":" + c.Config.App.HTTPPort,
			Handler:           engine,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start serves HTTP until the context is canceled, then shuts down
// within the given timeout.
func (s *Server) Start(ctx context.Context, shutdownTimeout time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.Logger.Info("shutting down HTTP server")
		return s.HTTP.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
