package errors

import (
	"net/http"
	"testing"

	"bookshop/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := NewValidationError(map[string]string{"email": "must be a valid email"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, map[string]string{"email": "must be a valid email"}, err.Details())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrBookNotFound.WrapMessage("book 42")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "BOOK_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrBookNotFound))
	assert.False(t, errors.Is(wrapped, ErrUserNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert book")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
