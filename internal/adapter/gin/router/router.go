package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goodreads/internal/adapter/gin/handler"
	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/adapter/session"
	"goodreads/web/templates"
)

// Handlers bundles the page and API handlers the router mounts.
type Handlers struct {
	Home   *handler.HomeHandler
	Book   *handler.BookHandler
	Review *handler.ReviewHandler
	User   *handler.UserHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	sessions session.Store,
	sessionCookie string,
	rateLimit middleware.RateLimitConfig,
	redisClient *goredis.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.SetHTMLTemplate(templates.Load())
	router.RedirectTrailingSlash = true

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(redisClient, rateLimit, log))
	router.Use(middleware.Session(sessions, sessionCookie, log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "goodreads-web",
		})
	})

	router.GET("/", h.Home.Home)

	books := router.Group("/books")
	{
		books.GET("/", h.Book.List)
		books.GET("/:id/", h.Book.Detail)
		books.POST("/:id/reviews/", middleware.LoginRequired(), h.Review.Submit)
	}

	users := router.Group("/users")
	{
		users.GET("/register/", h.User.RegisterForm)
		users.POST("/register/", h.User.Register)
		users.GET("/login/", h.User.LoginForm)
		users.POST("/login/", h.User.Login)
		users.GET("/logout/", h.User.Logout)

		authed := users.Group("/", middleware.LoginRequired())
		{
			authed.GET("profile/", h.User.Profile)
			authed.GET("profile/edit/", h.User.ProfileEditForm)
			authed.POST("profile/edit/", h.User.ProfileEdit)
		}
	}

	api := router.Group("/api")
	{
		api.GET("/reviews/:id/", h.Review.Get)
	}

	return router
}
