package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"goodreads/internal/domain/book"
	domain "goodreads/internal/domain/review"
	pkgerrors "goodreads/pkg/errors"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, rv *domain.Review) (int64, error) {
	args := m.Called(ctx, rv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockRepository) ListByBook(ctx context.Context, bookID int64) ([]domain.Review, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockRepository) ListRecent(ctx context.Context, page, pageSize int64) ([]domain.Review, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

// MockBookGetter is a mock implementation of BookGetter
type MockBookGetter struct {
	mock.Mock
}

func (m *MockBookGetter) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Book), args.Error(1)
}

func newService(t *testing.T) (*Service, *MockRepository, *MockBookGetter) {
	repo := new(MockRepository)
	books := new(MockBookGetter)
	svc := New(repo, books, zaptest.NewLogger(t), 10, 100)
	return svc, repo, books
}

func TestSubmitReview_Success(t *testing.T) {
	svc, repo, books := newService(t)

	books.On("GetByID", mock.Anything, int64(1)).Return(&book.Book{ID: 1, Title: "book1"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.BookID == 1 && rv.UserID == 2 && rv.StarsGiven == 3 && rv.Comment == "Nice book"
	})).Return(int64(5), nil)

	resp, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		BookID:     1,
		UserID:     2,
		StarsGiven: 3,
		Comment:    "Nice book",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	repo.AssertExpectations(t)
}

func TestSubmitReview_StarsOutOfRange(t *testing.T) {
	svc, repo, _ := newService(t)

	for _, stars := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
			BookID:     1,
			UserID:     2,
			StarsGiven: stars,
			Comment:    "Nice book",
		})

		var ve *pkgerrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "stars_given")
	}
	repo.AssertNotCalled(t, "Create")
}

func TestSubmitReview_EmptyComment(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		BookID:     1,
		UserID:     2,
		StarsGiven: 3,
	})

	var ve *pkgerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "This field is required.", ve.Fields["comment"])
	repo.AssertNotCalled(t, "Create")
}

func TestSubmitReview_BookNotFound(t *testing.T) {
	svc, repo, books := newService(t)

	books.On("GetByID", mock.Anything, int64(42)).
		Return(nil, pkgerrors.NewNotFoundError("book", "book not found: id=42"))

	_, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		BookID:     42,
		UserID:     2,
		StarsGiven: 3,
		Comment:    "Nice book",
	})

	var nfe *pkgerrors.NotFoundError
	require.ErrorAs(t, err, &nfe)
	repo.AssertNotCalled(t, "Create")
}

func TestGetReview(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Review{
		ID:         3,
		StarsGiven: 5,
		Comment:    "Nice book",
	}, nil)

	resp, err := svc.GetReview(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, 5, resp.StarsGiven)
	assert.Equal(t, "Nice book", resp.Comment)
}

func TestGetReview_NotFound(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("review", "review not found: id=99"))

	_, err := svc.GetReview(context.Background(), 99)

	var nfe *pkgerrors.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestListRecent_NormalizesPaging(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("ListRecent", mock.Anything, int64(1), int64(10)).
		Return([]domain.Review{}, int64(0), nil)

	resp, err := svc.ListRecent(context.Background(), 0, -5)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Pagination.Page)
	assert.Equal(t, int64(10), resp.Pagination.PageSize)
	repo.AssertExpectations(t)
}
