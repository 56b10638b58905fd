package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_PendingReset(t *testing.T) {
	now := time.Now()
	hash := "abc"
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name        string
		user        User
		wantPending bool
		wantExpired bool
	}{
		{name: "no code", user: User{}, wantPending: false, wantExpired: true},
		{name: "live code", user: User{ResetCodeHash: &hash, ResetCodeExpiresAt: &future}, wantPending: true, wantExpired: false},
		{name: "expired code", user: User{ResetCodeHash: &hash, ResetCodeExpiresAt: &past}, wantPending: true, wantExpired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPending, tt.user.HasPendingReset())
			assert.Equal(t, tt.wantExpired, tt.user.ResetCodeExpired(now))
		})
	}
}
