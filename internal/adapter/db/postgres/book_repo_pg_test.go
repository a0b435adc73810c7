package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"goodreads/internal/domain/book"
	pkgerrors "goodreads/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return db
}

func seedBooks(t *testing.T, repo *BookRepoPG, titles ...string) []int64 {
	ids := make([]int64, len(titles))
	for i, title := range titles {
		id, err := repo.Create(context.Background(), &book.Book{
			Title:       title,
			Description: fmt.Sprintf("Description%d", i+1),
			ISBN:        fmt.Sprintf("%09d", i+1),
		})
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestBookRepoPG_List_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	books, total, err := repo.List(context.Background(), "", 1, 10)

	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Equal(t, int64(0), total)
}

func TestBookRepoPG_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	seedBooks(t, repo, "book1", "book2", "book3")

	page1, total, err := repo.List(context.Background(), "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, "book1", page1[0].Title)
	assert.Equal(t, "book2", page1[1].Title)

	page2, total, err := repo.List(context.Background(), "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page2, 1)
	assert.Equal(t, "book3", page2[0].Title)
}

func TestBookRepoPG_List_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	seedBooks(t, repo, "Sport", "Guide", "Shoe Dog")

	tests := []struct {
		query string
		want  string
	}{
		{query: "sport", want: "Sport"},
		{query: "guide", want: "Guide"},
		{query: "shoe", want: "Shoe Dog"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			books, total, err := repo.List(context.Background(), tt.query, 1, 10)

			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, books, 1)
			assert.Equal(t, tt.want, books[0].Title)
		})
	}
}

func TestBookRepoPG_List_WildcardEscaping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	seedBooks(t, repo, "100% Cotton", "Plain Book")

	books, total, err := repo.List(context.Background(), "100%", 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "100% Cotton", books[0].Title)
}

func TestBookRepoPG_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	id, err := repo.Create(context.Background(), &book.Book{
		Title:       "Shoe Dog",
		Description: "A memoir",
		ISBN:        "9781501135910",
		Authors: []book.Author{
			{FirstName: "Phil", LastName: "Knight", Email: "phil@nike.com"},
		},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Shoe Dog", got.Title)
	assert.Equal(t, "9781501135910", got.ISBN)
	require.Len(t, got.Authors, 1)
	assert.Equal(t, "Phil Knight", got.Authors[0].FullName())
}

func TestBookRepoPG_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 42)

	require.Error(t, err)
	var nfe *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}
