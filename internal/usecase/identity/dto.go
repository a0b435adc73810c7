package identity

// RegisterRequest represents the registration form payload.
// Username and password are mandatory; the remaining fields are optional
// but the email must be well-formed when present.
type RegisterRequest struct {
	Username  string `validate:"required,max=150"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
	Email     string `validate:"omitempty,email"`
	Password  string `validate:"required"`
}

// RegisterResponse represents the payload after creating a user.
type RegisterResponse struct {
	ID int64
}

// Profile represents a user's account data without credentials.
type Profile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfileRequest represents the profile edit form payload.
type UpdateProfileRequest struct {
	UserID    int64  `validate:"required"`
	Username  string `validate:"required,max=150"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
	Email     string `validate:"omitempty,email"`
}
