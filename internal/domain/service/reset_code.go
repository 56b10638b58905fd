package service

import (
	"context"
	"time"
)

// ResetCodeGenerator creates one-time password reset codes.
type ResetCodeGenerator interface {
	// Generate returns a new code and the hash to persist for it.
	Generate() (code string, hash string, err error)

	// Hash returns the stored representation of a presented code.
	Hash(code string) string

	// TTL is how long an issued code stays valid.
	TTL() time.Duration
}

// ResetCodeNotifier delivers a reset code to the account owner.
type ResetCodeNotifier interface {
	SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
}
