package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"goodreads/internal/domain/user"
	pkgerrors "goodreads/pkg/errors"
)

func TestUserRepoPG_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	id, err := repo.Create(context.Background(), &user.User{
		Username:     "shahzod",
		FirstName:    "Shahzod",
		LastName:     "Nematov",
		Email:        "shahzod@gmail.com",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "shahzod", got.Username)
	assert.Equal(t, "Shahzod", got.FirstName)
	assert.Equal(t, "Nematov", got.LastName)
	assert.Equal(t, "shahzod@gmail.com", got.Email)
	assert.Equal(t, "hashed", got.PasswordHash)
}

func TestUserRepoPG_Create_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), &user.User{Username: "shahzod", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &user.User{Username: "shahzod", PasswordHash: "y"})

	require.Error(t, err)
	var aee *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &aee)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserRepoPG_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), &user.User{Username: "shahzod", PasswordHash: "x"})
	require.NoError(t, err)

	got, err := repo.GetByUsername(context.Background(), "shahzod")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "shahzod", got.Username)

	// absence is not an error
	missing, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoPG_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	id, err := repo.Create(context.Background(), &user.User{
		Username:     "shahzod",
		FirstName:    "Shahzod",
		Email:        "old@example.com",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)

	err = repo.Update(context.Background(), &user.User{
		ID:        id,
		Username:  "shahzod",
		FirstName: "Shahzod",
		LastName:  "Nematov",
		Email:     "shahzod@gmail.com",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Nematov", got.LastName)
	assert.Equal(t, "shahzod@gmail.com", got.Email)
	// password hash untouched when not supplied
	assert.Equal(t, "hashed", got.PasswordHash)
}

func TestUserRepoPG_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	err := repo.Update(context.Background(), &user.User{ID: 42, Username: "ghost"})

	require.Error(t, err)
	var nfe *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}
