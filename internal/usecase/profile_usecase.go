package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	EditProfile(ctx context.Context, userID int64, input EditProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, input ChangePasswordInput) error
}

// --- Input DTOs ---

// EditProfileInput carries the profile fields to change. Nil fields stay as they are.
type EditProfileInput struct {
	Username *string
	Email    *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}
