package book

// Book represents a catalogued work.
type Book struct {
	ID          int64    // ID is the unique identifier for the book
	Title       string   // Title of the work
	Description string   // Description is the free-text blurb
	ISBN        string   // ISBN identifies the physical work
	Authors     []Author // Authors linked through the book_authors join table
}

// Author represents a person who wrote one or more books.
type Author struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// FullName returns the author's display name.
func (a Author) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
