package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goodreads/internal/domain/book"
	pkgerrors "goodreads/pkg/errors"
	"goodreads/pkg/security"
)

// BookRepoPG implements the catalog repository using PostgreSQL and GORM.
type BookRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewBookRepoPG creates a new instance of BookRepoPG.
func NewBookRepoPG(db *gorm.DB, log *zap.Logger) *BookRepoPG {
	return &BookRepoPG{db: db, log: log}
}

// Create inserts a new book with its authors. Books are created through
// catalog management, not by end users.
func (r *BookRepoPG) Create(ctx context.Context, b *book.Book) (int64, error) {
	if b == nil {
		return 0, errors.New("book cannot be nil")
	}

	model := BookSchema{
		Title:       b.Title,
		Description: b.Description,
		ISBN:        b.ISBN,
	}
	for _, a := range b.Authors {
		model.Authors = append(model.Authors, AuthorSchema{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		})
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create book in db", zap.Error(err), zap.String("isbn", b.ISBN))
		return 0, fmt.Errorf("failed to create book: %w", err)
	}

	r.log.Info("book created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a book with its authors by ID.
func (r *BookRepoPG) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	var model BookSchema
	if err := r.db.WithContext(ctx).Preload("Authors").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("book not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("book", fmt.Sprintf("book not found: id=%d", id))
		}
		r.log.Error("failed to get book from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return toDomainBook(&model), nil
}

// List retrieves books with pagination and optional case-insensitive title
// search. Results are in stable insertion order. The returned total counts
// all matches, not just the current page.
func (r *BookRepoPG) List(ctx context.Context, query string, page, pageSize int64) ([]book.Book, int64, error) {
	tx := r.db.WithContext(ctx).Model(&BookSchema{})

	if query != "" {
		pattern := "%" + strings.ToLower(security.EscapeLike(query)) + "%"
		tx = tx.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.log.Error("failed to count books in db", zap.Error(err), zap.String("query", query))
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	var models []BookSchema
	if err := tx.Order("id ASC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&models).Error; err != nil {
		r.log.Error("failed to list books from db", zap.Error(err),
			zap.String("query", query), zap.Int64("page", page), zap.Int64("page_size", pageSize))
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]book.Book, len(models))
	for i := range models {
		books[i] = *toDomainBook(&models[i])
	}

	return books, total, nil
}

func toDomainBook(model *BookSchema) *book.Book {
	b := &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		ISBN:        model.ISBN,
	}
	for _, a := range model.Authors {
		b.Authors = append(b.Authors, book.Author{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		})
	}
	return b
}
