package postgres

import (
	"context"
	"testing"
	"time"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ResetPassword_SingleConditionalUpdate(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureWrites(t, db)
	repo := NewUserRepository(db)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	err := repo.ResetPassword(context.Background(), 7, "code-hash", "new-hash", now)

	// A dry run affects no rows, which is exactly the lost-race outcome.
	assert.True(t, errors.Is(err, repository.ErrResetCodeMismatch))

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `UPDATE "users" SET`)
	assert.Contains(t, stmt.SQL, `"password_hash"=`)
	assert.Contains(t, stmt.SQL, `"reset_code_hash"=`)
	assert.Contains(t, stmt.SQL, `"reset_code_expires_at"=`)
	assert.Contains(t, stmt.SQL, "WHERE id = $5 AND reset_code_hash = $6 AND reset_code_expires_at > $7")

	require.Len(t, stmt.Vars, 7)
	// SET columns are ordered by name: password_hash, reset_code_expires_at, reset_code_hash, updated_at.
	assert.Equal(t, "new-hash", stmt.Vars[0])
	assert.Nil(t, stmt.Vars[1])
	assert.Nil(t, stmt.Vars[2])
	assert.Equal(t, now, stmt.Vars[3])
	assert.Equal(t, []any{int64(7), "code-hash", now}, stmt.Vars[4:])
}

func TestUserRepository_UpdateProfile_OnlySuppliedColumns(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureWrites(t, db)
	repo := NewUserRepository(db)
	email := "new@example.com"

	err := repo.UpdateProfile(context.Background(), 3, entity.UserUpdate{Email: &email})

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.SQL, `"email"=$1`)
	assert.Contains(t, stmt.SQL, `"updated_at"=$2`)
	assert.NotContains(t, stmt.SQL, `"username"`)
	assert.Contains(t, stmt.SQL, "WHERE id = $3")
}
