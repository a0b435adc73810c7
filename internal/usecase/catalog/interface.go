package catalog

import "context"

// Usecase defines the interface for catalog business logic operations.
type Usecase interface {
	ListBooks(ctx context.Context, in ListBooksRequest) (*ListBooksResponse, error)
	GetBookDetail(ctx context.Context, id int64) (*BookDetailResponse, error)
}
