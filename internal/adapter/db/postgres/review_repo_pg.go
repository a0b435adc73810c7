package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goodreads/internal/domain/review"
	pkgerrors "goodreads/pkg/errors"
)

// ReviewRepoPG implements the review repository using PostgreSQL and GORM.
type ReviewRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewReviewRepoPG creates a new instance of ReviewRepoPG.
func NewReviewRepoPG(db *gorm.DB, log *zap.Logger) *ReviewRepoPG {
	return &ReviewRepoPG{db: db, log: log}
}

// Create inserts a new review row for an existing book and user.
func (r *ReviewRepoPG) Create(ctx context.Context, rv *review.Review) (int64, error) {
	if rv == nil {
		return 0, errors.New("review cannot be nil")
	}

	model := BookReviewSchema{
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		StarsGiven: rv.StarsGiven,
		Comment:    rv.Comment,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create review in db", zap.Error(err),
			zap.Int64("book_id", rv.BookID), zap.Int64("user_id", rv.UserID))
		return 0, fmt.Errorf("failed to create review: %w", err)
	}

	r.log.Info("review created in db", zap.Int64("id", model.ID), zap.Int64("book_id", rv.BookID))
	return model.ID, nil
}

// GetByID retrieves a review by its unique ID.
func (r *ReviewRepoPG) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	var model BookReviewSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("review not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("review", fmt.Sprintf("review not found: id=%d", id))
		}
		r.log.Error("failed to get review from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return toDomainReview(&model), nil
}

// ListByBook retrieves all reviews for a book, most recent first.
func (r *ReviewRepoPG) ListByBook(ctx context.Context, bookID int64) ([]review.Review, error) {
	var models []BookReviewSchema
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at DESC, id DESC").
		Find(&models).Error; err != nil {
		r.log.Error("failed to list reviews for book", zap.Error(err), zap.Int64("book_id", bookID))
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]review.Review, len(models))
	for i := range models {
		reviews[i] = *toDomainReview(&models[i])
	}

	return reviews, nil
}

// ListRecent retrieves reviews across all books, most recent first,
// paginated. The returned total counts all reviews.
func (r *ReviewRepoPG) ListRecent(ctx context.Context, page, pageSize int64) ([]review.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookReviewSchema{}).Count(&total).Error; err != nil {
		r.log.Error("failed to count reviews in db", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var models []BookReviewSchema
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("User").
		Order("created_at DESC, id DESC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&models).Error; err != nil {
		r.log.Error("failed to list recent reviews from db", zap.Error(err),
			zap.Int64("page", page), zap.Int64("page_size", pageSize))
		return nil, 0, fmt.Errorf("failed to list recent reviews: %w", err)
	}

	reviews := make([]review.Review, len(models))
	for i := range models {
		reviews[i] = *toDomainReview(&models[i])
	}

	return reviews, total, nil
}

func toDomainReview(model *BookReviewSchema) *review.Review {
	rv := &review.Review{
		ID:         model.ID,
		BookID:     model.BookID,
		UserID:     model.UserID,
		StarsGiven: model.StarsGiven,
		Comment:    model.Comment,
		CreatedAt:  model.CreatedAt,
	}
	if model.Book != nil {
		rv.BookTitle = model.Book.Title
	}
	if model.User != nil {
		rv.Username = model.User.Username
	}
	return rv
}
