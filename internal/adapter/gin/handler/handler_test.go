package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"goodreads/internal/adapter/db/postgres"
	"goodreads/internal/adapter/gin/handler"
	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/adapter/gin/router"
	"goodreads/internal/adapter/session"
	"goodreads/internal/domain/book"
	domainreview "goodreads/internal/domain/review"
	"goodreads/internal/usecase/catalog"
	"goodreads/internal/usecase/identity"
	"goodreads/internal/usecase/review"
)

// testEnv wires the full HTTP stack against an in-memory database and a
// miniredis-backed session store.
type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions session.Store

	books    *postgres.BookRepoPG
	reviews  *postgres.ReviewRepoPG
	users    *postgres.UserRepoPG
	identity identity.Usecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := zap.NewNop()
	sessions := session.NewRedisStore(client, time.Hour, log)

	bookRepo := postgres.NewBookRepoPG(db, log)
	reviewRepo := postgres.NewReviewRepoPG(db, log)
	userRepo := postgres.NewUserRepoPG(db, log)

	catalogUC := catalog.New(bookRepo, reviewRepo, log, 10, 100)
	reviewUC := review.New(reviewRepo, bookRepo, log, 10, 100)
	identityUC := identity.New(userRepo, nil, log)

	handlers := router.Handlers{
		Home:   handler.NewHomeHandler(reviewUC, log),
		Book:   handler.NewBookHandler(catalogUC, log),
		Review: handler.NewReviewHandler(reviewUC, catalogUC, log),
		User:   handler.NewUserHandler(identityUC, sessions, "session_id", 3600, log),
	}

	engine := router.SetupRouter(handlers, sessions, "session_id",
		middleware.RateLimitConfig{}, client, log)

	return &testEnv{
		router:   engine,
		db:       db,
		sessions: sessions,
		books:    bookRepo,
		reviews:  reviewRepo,
		users:    userRepo,
		identity: identityUC,
	}
}

// get performs a GET request, optionally carrying a session cookie.
func (e *testEnv) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST, optionally carrying a session cookie.
func (e *testEnv) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// seedBook inserts a book and returns it.
func (e *testEnv) seedBook(t *testing.T, title, isbn string) *book.Book {
	t.Helper()

	b := &book.Book{Title: title, Description: "About " + title, ISBN: isbn}
	id, err := e.books.Create(context.Background(), b)
	require.NoError(t, err)
	b.ID = id
	return b
}

// seedUser registers a user through the identity usecase so the stored
// password hash is valid for login.
func (e *testEnv) seedUser(t *testing.T, username, password string) int64 {
	t.Helper()

	resp, err := e.identity.Register(context.Background(), identity.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return resp.ID
}

// seedReview inserts a review directly and returns its ID.
func (e *testEnv) seedReview(t *testing.T, bookID, userID int64, stars int, comment string) int64 {
	t.Helper()

	id, err := e.reviews.Create(context.Background(), &domainreview.Review{
		BookID:     bookID,
		UserID:     userID,
		StarsGiven: stars,
		Comment:    comment,
	})
	require.NoError(t, err)
	return id
}

// login creates a session for the user and returns its cookie.
func (e *testEnv) login(t *testing.T, userID int64) *http.Cookie {
	t.Helper()

	token, err := e.sessions.Create(context.Background(), userID)
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: token}
}
