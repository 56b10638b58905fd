// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"bookshop/config"
	"bookshop/internal/domain/service"
	"bookshop/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClaims is the wire form of both token kinds.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID int64) (*service.TokenPair, error) {
	accessToken, err := s.generateToken(userID, service.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(userID, service.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Verify parses tokenString with the secret of kind and checks its claims.
func (s *jwtService) Verify(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if claims.Type != string(kind) {
		return nil, errors.Wrapf(service.ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.Wrapf(service.ErrInvalidToken, "invalid subject %q", claims.Subject)
	}

	return &service.Claims{
		UserID:    userID,
		Kind:      kind,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// HashToken returns the hex SHA-256 of a token, the form kept in the session store.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(kind service.TokenKind) ([]byte, error) {
	switch kind {
	case service.TokenKindAccess:
		return s.accessSecret, nil
	case service.TokenKindRefresh:
		return s.refreshSecret, nil
	default:
		return nil, errors.Wrapf(service.ErrInvalidToken, "unknown token kind %q", kind)
	}
}

func (s *jwtService) generateToken(userID int64, kind service.TokenKind) (string, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return "", err
	}

	ttl := s.accessTTL
	if kind == service.TokenKindRefresh {
		ttl = s.refreshTTL
	}

	now := s.now()
	claims := tokenClaims{
		Type: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// Two tokens issued within the same second must still differ for rotation to be observable.
			ID: uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
