package user

// User represents a registered account.
// PasswordHash holds a bcrypt hash, never the plaintext password.
type User struct {
	ID           int64
	Username     string // Username is unique across all accounts
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
