package review

import "context"

// Usecase defines the interface for review business logic operations.
type Usecase interface {
	SubmitReview(ctx context.Context, in SubmitReviewRequest) (*SubmitReviewResponse, error)
	GetReview(ctx context.Context, id int64) (*GetReviewResponse, error)
	ListRecent(ctx context.Context, page, pageSize int64) (*ListRecentResponse, error)
}
