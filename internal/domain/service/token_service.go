package service

import (
	"errors"
	"time"
)

// TokenKind distinguishes the two credentials issued at login.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// ErrInvalidToken is returned for malformed, expired, mis-signed or wrong-kind tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of a token.
type Claims struct {
	UserID    int64
	Kind      TokenKind
	ExpiresAt time.Time
}

// TokenPair is the access/refresh pair handed to a client after authentication.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for issuing and verifying signed tokens.
// It never touches storage.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID int64) (*TokenPair, error)

	// Verify checks signature, expiry and kind of a token.
	Verify(token string, kind TokenKind) (*Claims, error)

	// HashToken returns the fingerprint stored for a refresh token.
	HashToken(token string) string

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
