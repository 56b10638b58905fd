// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
// Login is matched against both email and username.
type LoginInput struct {
	Login    string
	Password string
}

// ResetPasswordInput defines the data required to finish a password reset.
type ResetPasswordInput struct {
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user with a fresh token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// TokensOutput returns a rotated token pair.
type TokensOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*TokensOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Authenticate verifies an access token and returns the caller's id.
	// The caller must still hold a live refresh session.
	Authenticate(ctx context.Context, accessToken string) (int64, error)
}
