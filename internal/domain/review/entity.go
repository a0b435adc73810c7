package review

import "time"

// Rating bounds for a review.
const (
	MinStars = 1
	MaxStars = 5
)

// Review represents a user's review of a book.
// A review always references an existing book and user.
type Review struct {
	ID         int64
	BookID     int64
	UserID     int64
	StarsGiven int    // StarsGiven is the rating, MinStars..MaxStars
	Comment    string // Comment is the free-text body
	CreatedAt  time.Time

	// Denormalized display fields, populated on reads.
	BookTitle string
	Username  string
}
