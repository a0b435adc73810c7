package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goodreads/cmd/web/infrastructure"
	"goodreads/internal/adapter/db/postgres"
	"goodreads/internal/adapter/gin/handler"
	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/adapter/gin/router"
	"goodreads/internal/adapter/session"
	"goodreads/internal/config"
	"goodreads/internal/notify"
	"goodreads/internal/usecase/catalog"
	"goodreads/internal/usecase/identity"
	"goodreads/internal/usecase/review"
	redisclient "goodreads/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Sessions    session.Store
	Mailer      notify.Mailer
	CatalogUC   catalog.Usecase
	ReviewUC    review.Usecase
	IdentityUC  identity.Usecase
	Handlers    router.Handlers
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	sessions := session.NewRedisStore(
		rdb.Client,
		time.Duration(cfg.Session.TTLSeconds)*time.Second,
		l,
	)

	var mailer notify.Mailer = notify.NopMailer{}
	if cfg.Mail.Enabled {
		mailer = notify.NewSMTPMailer(notify.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		}, l)
	}

	bookRepo := postgres.NewBookRepoPG(db, l)
	reviewRepo := postgres.NewReviewRepoPG(db, l)
	userRepo := postgres.NewUserRepoPG(db, l)

	catalogUC := catalog.New(bookRepo, reviewRepo, l,
		int64(cfg.App.DefaultPageSize), int64(cfg.App.MaxPageSize))
	reviewUC := review.New(reviewRepo, bookRepo, l,
		int64(cfg.App.DefaultPageSize), int64(cfg.App.MaxPageSize))
	identityUC := identity.New(userRepo, mailer, l)

	handlers := router.Handlers{
		Home:   handler.NewHomeHandler(reviewUC, l),
		Book:   handler.NewBookHandler(catalogUC, l),
		Review: handler.NewReviewHandler(reviewUC, catalogUC, l),
		User: handler.NewUserHandler(identityUC, sessions,
			cfg.Session.CookieName, cfg.Session.TTLSeconds, l),
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Sessions:    sessions,
		Mailer:      mailer,
		CatalogUC:   catalogUC,
		ReviewUC:    reviewUC,
		IdentityUC:  identityUC,
		Handlers:    handlers,
	}, nil
}

// RateLimitConfig maps the application rate limit settings onto the
// middleware configuration.
func (c *Container) RateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Enabled:           c.Config.RateLimit.Enabled,
		RequestsPerSecond: c.Config.RateLimit.RequestsPerSecond,
		BurstCapacity:     c.Config.RateLimit.BurstCapacity,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
