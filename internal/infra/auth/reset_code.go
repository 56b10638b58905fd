package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"time"

	"bookshop/config"
	"bookshop/internal/domain/service"
	"bookshop/internal/errors"
)

// ResetCodeLength is the number of digits in a password reset code.
const ResetCodeLength = 6

type resetCodeGenerator struct {
	ttl time.Duration
}

// NewResetCodeGenerator returns a generator of random numeric reset codes.
func NewResetCodeGenerator(cfg *config.Config) service.ResetCodeGenerator {
	return &resetCodeGenerator{ttl: cfg.Auth.ResetCodeTTL}
}

// Generate draws each digit from crypto/rand.
func (g *resetCodeGenerator) Generate() (string, string, error) {
	digits := make([]byte, ResetCodeLength)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", "", errors.Wrap(err, "generate reset code")
		}
		digits[i] = byte('0' + n.Int64())
	}

	code := string(digits)

	return code, g.Hash(code), nil
}

func (g *resetCodeGenerator) Hash(code string) string {
	sum := sha256.Sum256([]byte(code))

	return hex.EncodeToString(sum[:])
}

func (g *resetCodeGenerator) TTL() time.Duration {
	return g.ttl
}
