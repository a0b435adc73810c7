package identity

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"goodreads/internal/domain/user"
	"goodreads/internal/notify"
	pkgerrors "goodreads/pkg/errors"
	"goodreads/pkg/security"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
}

// Service implements the business logic for registration, login and
// profile management.
type Service struct {
	repo     Repository
	mailer   notify.Mailer
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new identity Service. If mailer is nil the welcome email
// is skipped.
func New(repo Repository, mailer notify.Mailer, log *zap.Logger) *Service {
	if mailer == nil {
		mailer = notify.NopMailer{}
	}
	return &Service{
		repo:     repo,
		mailer:   mailer,
		log:      log,
		validate: validator.New(),
	}
}

// Register validates the form, enforces username uniqueness and creates
// a user with a hashed password. On success the welcome email is sent
// best-effort in the background; a send failure never affects the result.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*RegisterResponse, error) {
	s.log.Info("registering user", zap.String("username", in.Username))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("registration validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		s.log.Error("failed to check username uniqueness", zap.String("username", in.Username), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate username uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("username already exists", zap.String("username", in.Username))
		return nil, pkgerrors.NewValidationError("username", "A user with that username already exists.")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	id, err := s.repo.Create(ctx, &user.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	// Welcome email is fire-and-forget; the user row is already committed
	// and a send failure must not surface to the request.
	if in.Email != "" {
		go func(username, email string) {
			if err := s.mailer.SendWelcome(username, email); err != nil {
				s.log.Warn("welcome email failed", zap.String("username", username), zap.Error(err))
			}
		}(in.Username, in.Email)
	}

	return &RegisterResponse{ID: id}, nil
}

// Authenticate verifies credentials against the stored hash. The same
// generic error is returned for an unknown username and a wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Profile, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.log.Error("failed to look up user for login", zap.String("username", username), zap.Error(err))
		return nil, pkgerrors.NewInternalError("login failed", err)
	}
	if u == nil || !security.CheckPassword(u.PasswordHash, password) {
		s.log.Info("login rejected", zap.String("username", username))
		return nil, pkgerrors.NewUnauthorizedError("Please enter a correct username and password.")
	}

	s.log.Info("login accepted", zap.Int64("user_id", u.ID), zap.String("username", username))
	return toProfile(u), nil
}

// GetProfile retrieves a user's account data by ID.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

// UpdateProfile validates and persists changed profile fields and returns
// the refreshed record.
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileRequest) (*Profile, error) {
	s.log.Info("updating profile", zap.Int64("user_id", in.UserID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("profile validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	current, err := s.repo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != current.Username {
		existing, err := s.repo.GetByUsername(ctx, in.Username)
		if err != nil {
			s.log.Error("failed to check username uniqueness", zap.String("username", in.Username), zap.Error(err))
			return nil, pkgerrors.NewInternalError("failed to validate username uniqueness", err)
		}
		if existing != nil {
			return nil, pkgerrors.NewValidationError("username", "A user with that username already exists.")
		}
	}

	if err := s.repo.Update(ctx, &user.User{
		ID:        in.UserID,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}); err != nil {
		s.log.Error("failed to update profile", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	refreshed, err := s.repo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	return toProfile(refreshed), nil
}

func toProfile(u *user.User) *Profile {
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// formFieldNames maps struct fields to the form field names rendered
// in templates.
var formFieldNames = map[string]string{
	"Username":  "username",
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
	"Password":  "password",
}

// formatValidationError converts validator errors into field-level messages.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := &pkgerrors.ValidationError{}
	for _, e := range validationErrors {
		name := formFieldNames[e.Field()]
		if name == "" {
			name = e.Field()
		}
		switch e.Tag() {
		case "required":
			fields.Add(name, "This field is required.")
		case "email":
			fields.Add(name, "Enter a valid email address.")
		case "max":
			fields.Add(name, "Ensure this value has at most "+e.Param()+" characters.")
		default:
			fields.Add(name, "This field is invalid.")
		}
	}
	return fields
}
