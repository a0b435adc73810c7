package catalog

import (
	"goodreads/internal/domain/book"
	"goodreads/internal/domain/paging"
	"goodreads/internal/domain/review"
)

// ListBooksRequest represents the request payload for listing books.
// It supports pagination and case-insensitive title search.
type ListBooksRequest struct {
	Query    string
	Page     int64
	PageSize int64
}

// ListBooksResponse represents the response payload for book listing.
type ListBooksResponse struct {
	Books      []book.Book
	Query      string
	Pagination *paging.Pagination
}

// Empty reports whether the listing matched no books at all.
func (r *ListBooksResponse) Empty() bool {
	return len(r.Books) == 0
}

// BookDetailResponse represents one book together with its reviews,
// most recent first.
type BookDetailResponse struct {
	Book    *book.Book
	Reviews []review.Review
}
