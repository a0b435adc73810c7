package identity

import "context"

// Usecase defines the interface for identity business logic operations.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*RegisterResponse, error)
	Authenticate(ctx context.Context, username, password string) (*Profile, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, in UpdateProfileRequest) (*Profile, error)
}
