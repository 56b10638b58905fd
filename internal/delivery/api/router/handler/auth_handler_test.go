package handler

import (
	"net/http"
	"testing"
	"time"

	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	mockUC "bookshop/internal/mocks/usecase"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	t.Helper()

	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.Logout)
	e.POST("/auth/forgot-password", h.ForgotPassword)
	e.POST("/auth/reset-password", h.ResetPassword)

	return e, authUC
}

func testUser() *entity.User {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           1,
		Username:     "reader",
		Email:        "reader@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	e, authUC := newAuthTestEcho(t)

	authUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "secret1",
	}).Return(&usecase.AuthOutput{User: testUser(), AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":" reader ","email":"Reader@Example.com","password":"secret1"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	var data AuthResponse
	decodeData(t, rec, &data)
	assert.Equal(t, "access", data.AccessToken)
	assert.Equal(t, "refresh", data.RefreshToken)
	require.NotNil(t, data.User)
	assert.Equal(t, int64(1), data.User.ID)
	assert.Equal(t, "reader", data.User.Username)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	e, _ := newAuthTestEcho(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"ab","email":"nope","password":"123"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "username")
	assert.Contains(t, env.Error.Details, "email")
	assert.Contains(t, env.Error.Details, "password")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e, authUC := newAuthTestEcho(t)

	authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("register")).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"reader","email":"reader@example.com","password":"secret1"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	e, _ := newAuthTestEcho(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/register", `{"username":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLogin string
	}{
		{name: "username", body: `{"login":"reader","password":"secret1"}`, wantLogin: "reader"},
		{name: "email is lowercased", body: `{"login":"Reader@Example.com","password":"secret1"}`, wantLogin: "reader@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestEcho(t)
			authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Login: tt.wantLogin, Password: "secret1"}).
				Return(&usecase.AuthOutput{User: testUser(), AccessToken: "a", RefreshToken: "r"}, nil).Once()

			rec := serve(e, jsonRequest(http.MethodPost, "/auth/login", tt.body))

			require.Equal(t, http.StatusOK, rec.Code)
			var data AuthResponse
			decodeData(t, rec, &data)
			assert.Equal(t, "a", data.AccessToken)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/login", `{"login":"ghost","password":"whatever"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), env.Error.Message)
}

func TestAuthHandler_Refresh(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().Refresh(mock.Anything, "old-refresh").
		Return(&usecase.TokensOutput{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/refresh", `{"refreshToken":"old-refresh"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var data TokensResponse
	decodeData(t, rec, &data)
	assert.Equal(t, TokensResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, data)
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().Refresh(mock.Anything, "stale").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("refresh")).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/refresh", `{"refreshToken":"stale"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().Logout(mock.Anything, "refresh").Return(nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/logout", `{"refreshToken":"refresh"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	e, _ := newAuthTestEcho(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/logout", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decode(t, rec).Error.Details["refreshToken"])
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().ForgotPassword(mock.Anything, "reader@example.com").Return(nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/forgot-password", `{"email":"READER@example.com"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var data MessageResponse
	decodeData(t, rec, &data)
	assert.Equal(t, "Reset code sent", data.Message)
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").
		Return(domainerrors.ErrUserNotFound.WrapMessage("forgot password")).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/forgot-password", `{"email":"ghost@example.com"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	e, authUC := newAuthTestEcho(t)
	authUC.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{
		Email:           "reader@example.com",
		Code:            "123456",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}).Return(nil).Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/reset-password",
		`{"email":"reader@example.com","code":"123456","newPassword":"newsecret","confirmPassword":"newsecret"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ResetPassword_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name:       "confirm mismatch",
			body:       `{"email":"reader@example.com","code":"123456","newPassword":"newsecret","confirmPassword":"other"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantField:  "confirmPassword",
		},
		{
			name:       "short code",
			body:       `{"email":"reader@example.com","code":"123","newPassword":"newsecret","confirmPassword":"newsecret"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantField:  "code",
		},
		{
			name:       "not requested",
			body:       `{"email":"reader@example.com","code":"123456","newPassword":"newsecret","confirmPassword":"newsecret"}`,
			ucErr:      domainerrors.ErrResetNotRequested,
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   "RESET_NOT_REQUESTED",
		},
		{
			name:       "wrong code",
			body:       `{"email":"reader@example.com","code":"654321","newPassword":"newsecret","confirmPassword":"newsecret"}`,
			ucErr:      domainerrors.ErrInvalidResetCode,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RESET_CODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestEcho(t)
			if tt.ucErr != nil {
				authUC.EXPECT().ResetPassword(mock.Anything, mock.Anything).Return(tt.ucErr).Once()
			}

			rec := serve(e, jsonRequest(http.MethodPost, "/auth/reset-password", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantField != "" {
				assert.Contains(t, env.Error.Details, tt.wantField)
			}
		})
	}
}
