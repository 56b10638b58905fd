package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCodeGenerator_Generate(t *testing.T) {
	generator := NewResetCodeGenerator(newTestConfig())

	seen := make(map[string]struct{})
	for range 20 {
		code, hash, err := generator.Generate()
		require.NoError(t, err)

		assert.Len(t, code, ResetCodeLength)
		assert.Regexp(t, `^[0-9]{6}$`, code)
		assert.Equal(t, generator.Hash(code), hash)
		assert.NotEqual(t, code, hash)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
	assert.Equal(t, 15*time.Minute, generator.TTL())
}
