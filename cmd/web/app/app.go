package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"goodreads/cmd/web/di"
	"goodreads/cmd/web/server"
	"goodreads/internal/config"
	"goodreads/pkg/logger"
)

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Server    *server.Server
	Container *di.Container
}

// New creates a new application instance
func New() (*App, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    l,
		Server:    server.New(container),
		Container: container,
	}, nil
}

// Run starts the application and blocks until the context is canceled
// or the server fails.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", getEnvironment()),
	)

	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	err := a.Server.Start(ctx, timeout)

	if cerr := a.Container.Close(); cerr != nil {
		a.Logger.Error("failed to close container", zap.Error(cerr))
		if err == nil {
			err = cerr
		}
	}

	a.Logger.Info("application shutdown complete")

	// Sync failures on stdout and stderr are expected and harmless
	_ = a.Logger.Sync()

	return err
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:            cfg.Logger.Level,
		Format:           cfg.Logger.Format,
		OutputPath:       cfg.Logger.OutputPath,
		SlowQuerySeconds: cfg.Logger.SlowQuerySeconds,
		EnableSampling:   cfg.Logger.EnableSampling,
		ServiceName:      cfg.Logger.ServiceName,
		ServiceVersion:   cfg.Logger.ServiceVersion,
		Environment:      getEnvironment(),
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

// getEnvironment returns the application environment
func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
