package catalog

import (
	"context"

	"go.uber.org/zap"

	"goodreads/internal/domain/book"
	"goodreads/internal/domain/paging"
	"goodreads/internal/domain/review"
	"goodreads/pkg/security"
)

// BookRepository defines the interface for catalog data access.
type BookRepository interface {
	GetByID(ctx context.Context, id int64) (*book.Book, error)
	List(ctx context.Context, query string, page, pageSize int64) ([]book.Book, int64, error)
}

// ReviewReader supplies the reviews shown on a book's detail page.
type ReviewReader interface {
	ListByBook(ctx context.Context, bookID int64) ([]review.Review, error)
}

// Service implements the business logic for catalog browsing.
type Service struct {
	books           BookRepository
	reviews         ReviewReader
	log             *zap.Logger
	defaultPageSize int64
	maxPageSize     int64
}

// New creates a new catalog Service.
func New(books BookRepository, reviews ReviewReader, log *zap.Logger, defaultPageSize, maxPageSize int64) *Service {
	return &Service{
		books:           books,
		reviews:         reviews,
		log:             log,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListBooks retrieves a paginated list of books in stable insertion order,
// filtered by a case-insensitive title search when a query is given.
// Invalid page or page size values fall back to the configured defaults.
func (s *Service) ListBooks(ctx context.Context, in ListBooksRequest) (*ListBooksResponse, error) {
	page, pageSize := paging.Normalize(in.Page, in.PageSize, s.defaultPageSize, s.maxPageSize)
	query := security.NormalizeSearchQuery(in.Query)

	s.log.Debug("listing books",
		zap.String("query", query), zap.Int64("page", page), zap.Int64("page_size", pageSize))

	books, total, err := s.books.List(ctx, query, page, pageSize)
	if err != nil {
		s.log.Error("failed to list books", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return &ListBooksResponse{
		Books:      books,
		Query:      query,
		Pagination: paging.New(total, page, pageSize),
	}, nil
}

// GetBookDetail retrieves one book with its reviews, most recent first.
func (s *Service) GetBookDetail(ctx context.Context, id int64) (*BookDetailResponse, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, id)
	if err != nil {
		s.log.Error("failed to list reviews for book", zap.Int64("book_id", id), zap.Error(err))
		return nil, err
	}

	return &BookDetailResponse{
		Book:    b,
		Reviews: reviews,
	}, nil
}
