// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"bookshop/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserConflict is returned when a unique username or email is already taken.
	ErrUserConflict = errors.New("user already exists")

	// ErrResetCodeMismatch is returned when a conditional password reset matched no row.
	ErrResetCodeMismatch = errors.New("reset code mismatch")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmailOrUsername returns the first user whose email equals email or
	// whose username equals username.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new user and fills its id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile changes the supplied profile fields.
	UpdateProfile(ctx context.Context, id int64, update entity.UserUpdate) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// SetResetCode stores the hash of a freshly issued reset code and its expiry.
	SetResetCode(ctx context.Context, id int64, codeHash string, expiresAt time.Time) error

	// ResetPassword replaces the password and clears the reset code in a single
	// conditional update that only matches while codeHash is still the stored,
	// unexpired code. It returns ErrResetCodeMismatch when no row matched.
	ResetPassword(ctx context.Context, id int64, codeHash, passwordHash string, now time.Time) error
}
