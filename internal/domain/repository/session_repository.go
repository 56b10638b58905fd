package repository

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a user has no live refresh session.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps the single live refresh token fingerprint per user
// in a key-value store with expiry.
type SessionRepository interface {
	// Get returns the stored token hash for the user.
	Get(ctx context.Context, userID int64) (string, error)

	// Set stores tokenHash for the user, replacing any previous value.
	Set(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error

	// Delete removes the user's session. Deleting a missing session is not an error.
	Delete(ctx context.Context, userID int64) error
}
