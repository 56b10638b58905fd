package validator

import (
	"testing"

	domainerrors "bookshop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Username        string  `json:"username" validate:"required,min=3,max=30"`
	Email           string  `json:"email,omitempty" validate:"required,email"`
	Code            string  `json:"code" validate:"omitempty,len=6,numeric"`
	Price           int64   `form:"price" validate:"omitempty,gt=0"`
	Sort            string  `query:"sort" validate:"omitempty,oneof=asc desc"`
	Nickname        *string `json:"nickname" validate:"omitempty,min=2"`
	NewPassword     string  `json:"newPassword" validate:"required"`
	ConfirmPassword string  `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

func valid() signupRequest {
	return signupRequest{
		Username:        "reader",
		Email:           "reader@example.com",
		NewPassword:     "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, New().Validate(valid()))
}

func TestValidate_FieldMessages(t *testing.T) {
	short := "x"
	req := signupRequest{
		Username:        "ab",
		Email:           "not-an-email",
		Code:            "12ab56",
		Price:           -1,
		Sort:            "sideways",
		Nickname:        &short,
		NewPassword:     "secret1",
		ConfirmPassword: "secret2",
	}

	err := New().Validate(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	fields, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"username":        "must be at least 3 characters",
		"email":           "must be a valid email address",
		"code":            "must contain digits only",
		"price":           "must be greater than 0",
		"sort":            "must be one of: asc desc",
		"nickname":        "must be at least 2 characters",
		"confirmPassword": "must match newPassword",
	}, fields)
}

func TestValidate_Required(t *testing.T) {
	err := New().Validate(signupRequest{ConfirmPassword: ""})
	require.Error(t, err)

	fields := err.(domainerrors.AppError).Details().(map[string]string)
	assert.Equal(t, "is required", fields["username"])
	assert.Equal(t, "is required", fields["email"])
	assert.Equal(t, "is required", fields["newPassword"])
}
