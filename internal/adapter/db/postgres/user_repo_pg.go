package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goodreads/internal/domain/user"
	pkgerrors "goodreads/pkg/errors"
)

// UserRepoPG implements the identity repository using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// Create inserts a new user into the database.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("username already taken", zap.String("username", u.Username))
			return 0, pkgerrors.NewAlreadyExistsError("user", "A user with that username already exists.")
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("username", u.Username))
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID), zap.String("username", u.Username))
	return model.ID, nil
}

// Update persists changed profile fields for an existing user.
// The password hash is only written when set.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) error {
	if u == nil {
		return errors.New("user cannot be nil")
	}

	updates := map[string]any{
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}
	if u.PasswordHash != "" {
		updates["password_hash"] = u.PasswordHash
	}

	res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", u.ID).Updates(updates)
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", u.ID))
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("user not found for update", zap.Int64("id", u.ID))
		return pkgerrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", u.ID))
	}

	r.log.Info("user updated in db", zap.Int64("id", u.ID))
	return nil
}

// GetByID retrieves a user from the database by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(&model), nil
}

// GetByUsername retrieves a user by username.
// Returns (nil, nil) when no such user exists, so callers can use it for
// uniqueness checks without treating absence as an error.
func (r *UserRepoPG) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by username", zap.String("username", username))
			return nil, nil
		}
		r.log.Error("failed to get user by username from db", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return toDomainUser(&model), nil
}

// Count returns the number of registered users.
func (r *UserRepoPG) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func toDomainUser(model *UserSchema) *user.User {
	return &user.User{
		ID:           model.ID,
		Username:     model.Username,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
	}
}
