package review

import (
	"goodreads/internal/domain/paging"
	domain "goodreads/internal/domain/review"
)

// SubmitReviewRequest represents the payload for submitting a review.
type SubmitReviewRequest struct {
	BookID     int64  `validate:"required"`
	UserID     int64  `validate:"required"`
	StarsGiven int    `validate:"min=1,max=5"`
	Comment    string `validate:"required"`
}

// SubmitReviewResponse represents the payload after creating a review.
type SubmitReviewResponse struct {
	ID int64
}

// GetReviewResponse is the single-resource lookup result.
// Its JSON shape is part of the read API contract.
type GetReviewResponse struct {
	ID         int64  `json:"id"`
	StarsGiven int    `json:"stars_given"`
	Comment    string `json:"comment"`
}

// ListRecentResponse represents the home-page review feed.
type ListRecentResponse struct {
	Reviews    []domain.Review
	Pagination *paging.Pagination
}
