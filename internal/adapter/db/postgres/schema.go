package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BookSchema represents the database schema for the books table.
type BookSchema struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Title       string         `gorm:"not null;index"`
	Description string         `gorm:"type:text"`
	ISBN        string         `gorm:"column:isbn;not null"`
	Authors     []AuthorSchema `gorm:"many2many:book_authors;joinForeignKey:BookID;joinReferences:AuthorID"`
}

// TableName specifies the table name for the BookSchema model.
func (BookSchema) TableName() string {
	return "books"
}

// AuthorSchema represents the database schema for the authors table.
type AuthorSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
}

// TableName specifies the table name for the AuthorSchema model.
func (AuthorSchema) TableName() string {
	return "authors"
}

// BookAuthorSchema is the join table linking books to authors.
type BookAuthorSchema struct {
	BookID   int64 `gorm:"primaryKey"`
	AuthorID int64 `gorm:"primaryKey"`
}

// TableName specifies the table name for the BookAuthorSchema model.
func (BookAuthorSchema) TableName() string {
	return "book_authors"
}

// UserSchema represents the database schema for the custom_users table.
type UserSchema struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"not null;uniqueIndex"`
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "custom_users"
}

// BookReviewSchema represents the database schema for the book_reviews table.
// A review row never exists without a valid book and user reference.
type BookReviewSchema struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	BookID     int64  `gorm:"not null;index"`
	UserID     int64  `gorm:"not null;index"`
	StarsGiven int    `gorm:"not null"`
	Comment    string `gorm:"not null;type:text"`
	CreatedAt  time.Time

	Book *BookSchema `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	User *UserSchema `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the BookReviewSchema model.
func (BookReviewSchema) TableName() string {
	return "book_reviews"
}

// Migrate creates or updates all application tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&BookSchema{}, "Authors", &BookAuthorSchema{}); err != nil {
		return fmt.Errorf("failed to set up book_authors join table: %w", err)
	}

	if err := db.AutoMigrate(
		&AuthorSchema{},
		&BookSchema{},
		&UserSchema{},
		&BookReviewSchema{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}
