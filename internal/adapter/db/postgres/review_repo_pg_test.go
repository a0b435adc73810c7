package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"goodreads/internal/domain/review"
	"goodreads/internal/domain/user"
	pkgerrors "goodreads/pkg/errors"
)

func seedUser(t *testing.T, repo *UserRepoPG, username string) int64 {
	id, err := repo.Create(context.Background(), &user.User{
		Username:     username,
		FirstName:    "Shahzod",
		LastName:     "Nematov",
		Email:        username + "@example.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return id
}

func TestReviewRepoPG_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	bookRepo := NewBookRepoPG(db, log)
	userRepo := NewUserRepoPG(db, log)
	repo := NewReviewRepoPG(db, log)

	bookID := seedBooks(t, bookRepo, "book1")[0]
	userID := seedUser(t, userRepo, "shahzod")

	id, err := repo.Create(context.Background(), &review.Review{
		BookID:     bookID,
		UserID:     userID,
		StarsGiven: 3,
		Comment:    "Nice book",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, bookID, got.BookID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, 3, got.StarsGiven)
	assert.Equal(t, "Nice book", got.Comment)
}

func TestReviewRepoPG_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 99)

	require.Error(t, err)
	var nfe *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestReviewRepoPG_ListByBook_MostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	bookRepo := NewBookRepoPG(db, log)
	userRepo := NewUserRepoPG(db, log)
	repo := NewReviewRepoPG(db, log)

	bookID := seedBooks(t, bookRepo, "book1")[0]
	otherID := seedBooks(t, bookRepo, "book2")[0]
	userID := seedUser(t, userRepo, "shahzod")

	for _, comment := range []string{"Very good book", "Useful book", "Nice book"} {
		_, err := repo.Create(context.Background(), &review.Review{
			BookID:     bookID,
			UserID:     userID,
			StarsGiven: 4,
			Comment:    comment,
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(context.Background(), &review.Review{
		BookID:     otherID,
		UserID:     userID,
		StarsGiven: 5,
		Comment:    "Other book review",
	})
	require.NoError(t, err)

	reviews, err := repo.ListByBook(context.Background(), bookID)
	require.NoError(t, err)

	require.Len(t, reviews, 3)
	assert.Equal(t, "Nice book", reviews[0].Comment)
	assert.Equal(t, "Useful book", reviews[1].Comment)
	assert.Equal(t, "Very good book", reviews[2].Comment)
	assert.Equal(t, "shahzod", reviews[0].Username)
}

func TestReviewRepoPG_ListRecent_Pagination(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	bookRepo := NewBookRepoPG(db, log)
	userRepo := NewUserRepoPG(db, log)
	repo := NewReviewRepoPG(db, log)

	bookID := seedBooks(t, bookRepo, "book1")[0]
	userID := seedUser(t, userRepo, "shahzod")

	for _, comment := range []string{"Very good book", "Useful book", "Nice book"} {
		_, err := repo.Create(context.Background(), &review.Review{
			BookID:     bookID,
			UserID:     userID,
			StarsGiven: 3,
			Comment:    comment,
		})
		require.NoError(t, err)
	}

	// first page holds the two most recent reviews
	recent, total, err := repo.ListRecent(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, recent, 2)
	assert.Equal(t, "Nice book", recent[0].Comment)
	assert.Equal(t, "Useful book", recent[1].Comment)
	assert.Equal(t, "book1", recent[0].BookTitle)

	oldest, _, err := repo.ListRecent(context.Background(), 2, 2)
	require.NoError(t, err)

	require.Len(t, oldest, 1)
	assert.Equal(t, "Very good book", oldest[0].Comment)
}
