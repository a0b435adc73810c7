package review

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"goodreads/internal/domain/book"
	"goodreads/internal/domain/paging"
	domain "goodreads/internal/domain/review"
	pkgerrors "goodreads/pkg/errors"
)

// Repository defines the interface for review data access operations.
type Repository interface {
	Create(ctx context.Context, rv *domain.Review) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]domain.Review, error)
	ListRecent(ctx context.Context, page, pageSize int64) ([]domain.Review, int64, error)
}

// BookGetter verifies that the reviewed book exists.
type BookGetter interface {
	GetByID(ctx context.Context, id int64) (*book.Book, error)
}

// Service implements the business logic for review submission and lookup.
type Service struct {
	repo            Repository
	books           BookGetter
	log             *zap.Logger
	validate        *validator.Validate
	defaultPageSize int64
	maxPageSize     int64
}

// New creates a new review Service.
func New(repo Repository, books BookGetter, log *zap.Logger, defaultPageSize, maxPageSize int64) *Service {
	return &Service{
		repo:            repo,
		books:           books,
		log:             log,
		validate:        validator.New(),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// SubmitReview validates and persists a review for an existing book by an
// authenticated user. Persisting the row is the only side effect.
func (s *Service) SubmitReview(ctx context.Context, in SubmitReviewRequest) (*SubmitReviewResponse, error) {
	s.log.Info("submitting review",
		zap.Int64("book_id", in.BookID), zap.Int64("user_id", in.UserID), zap.Int("stars_given", in.StarsGiven))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("review validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	// Reject reviews for books that do not exist
	if _, err := s.books.GetByID(ctx, in.BookID); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &domain.Review{
		BookID:     in.BookID,
		UserID:     in.UserID,
		StarsGiven: in.StarsGiven,
		Comment:    in.Comment,
	})
	if err != nil {
		s.log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	return &SubmitReviewResponse{ID: id}, nil
}

// GetReview retrieves one review for the read API.
func (s *Service) GetReview(ctx context.Context, id int64) (*GetReviewResponse, error) {
	if id <= 0 {
		return nil, pkgerrors.NewNotFoundError("review", "review not found")
	}

	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GetReviewResponse{
		ID:         rv.ID,
		StarsGiven: rv.StarsGiven,
		Comment:    rv.Comment,
	}, nil
}

// ListRecent retrieves the paginated home-page feed, newest reviews first.
func (s *Service) ListRecent(ctx context.Context, page, pageSize int64) (*ListRecentResponse, error) {
	page, pageSize = paging.Normalize(page, pageSize, s.defaultPageSize, s.maxPageSize)

	reviews, total, err := s.repo.ListRecent(ctx, page, pageSize)
	if err != nil {
		s.log.Error("failed to list recent reviews", zap.Error(err))
		return nil, err
	}

	return &ListRecentResponse{
		Reviews:    reviews,
		Pagination: paging.New(total, page, pageSize),
	}, nil
}

// formatValidationError converts validator errors into field-level messages.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := &pkgerrors.ValidationError{}
	for _, e := range validationErrors {
		switch e.Field() {
		case "StarsGiven":
			fields.Add("stars_given", "Stars must be between 1 and 5.")
		case "Comment":
			fields.Add("comment", "This field is required.")
		case "BookID":
			fields.Add("book", "This field is required.")
		case "UserID":
			fields.Add("user", "This field is required.")
		default:
			fields.Add(e.Field(), "This field is invalid.")
		}
	}
	return fields
}
