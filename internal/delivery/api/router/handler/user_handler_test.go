package handler

import (
	"net/http"
	"testing"

	domainerrors "bookshop/internal/domain/errors"
	mockUC "bookshop/internal/mocks/usecase"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestEcho(t *testing.T, userID int64) (*echo.Echo, *mockUC.MockProfileUsecase) {
	t.Helper()

	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC})

	e := newTestEcho()
	g := e.Group("/users")
	if userID > 0 {
		g.Use(asUser(userID))
	}
	g.GET("/profile", h.GetProfile)
	g.PATCH("/profile", h.EditProfile)
	g.PATCH("/password", h.ChangePassword)

	return e, profileUC
}

func TestUserHandler_GetProfile(t *testing.T) {
	e, profileUC := newUserTestEcho(t, 1)
	profileUC.EXPECT().GetProfile(mock.Anything, int64(1)).Return(testUser(), nil).Once()

	rec := serve(e, jsonRequest(http.MethodGet, "/users/profile", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var data map[string]any
	decodeData(t, rec, &data)
	assert.ElementsMatch(t, []string{"id", "username", "email", "createdAt", "updatedAt"}, keys(data))
}

func TestUserHandler_GetProfile_NoCaller(t *testing.T) {
	e, _ := newUserTestEcho(t, 0)

	rec := serve(e, jsonRequest(http.MethodGet, "/users/profile", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestUserHandler_EditProfile(t *testing.T) {
	e, profileUC := newUserTestEcho(t, 1)

	updated := testUser()
	updated.Email = "new@example.com"
	profileUC.EXPECT().EditProfile(mock.Anything, int64(1), usecase.EditProfileInput{Email: ptr("new@example.com")}).
		Return(updated, nil).Once()

	rec := serve(e, jsonRequest(http.MethodPatch, "/users/profile", `{"email":" NEW@example.com "}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var data UserResponse
	decodeData(t, rec, &data)
	assert.Equal(t, "new@example.com", data.Email)
}

func TestUserHandler_EditProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid email",
			body:       `{"email":"broken"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "nothing to update",
			body:       `{}`,
			ucErr:      domainerrors.ErrNoFieldsToUpdate,
			wantStatus: http.StatusBadRequest,
			wantCode:   "NO_FIELDS_TO_UPDATE",
		},
		{
			name:       "username taken",
			body:       `{"username":"taken"}`,
			ucErr:      domainerrors.ErrUsernameAlreadyInUse,
			wantStatus: http.StatusConflict,
			wantCode:   "USERNAME_ALREADY_IN_USE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, profileUC := newUserTestEcho(t, 1)
			if tt.ucErr != nil {
				profileUC.EXPECT().EditProfile(mock.Anything, int64(1), mock.Anything).Return(nil, tt.ucErr).Once()
			}

			rec := serve(e, jsonRequest(http.MethodPatch, "/users/profile", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	e, profileUC := newUserTestEcho(t, 1)
	profileUC.EXPECT().ChangePassword(mock.Anything, int64(1), usecase.ChangePasswordInput{
		OldPassword:     "oldsecret",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}).Return(nil).Once()

	rec := serve(e, jsonRequest(http.MethodPatch, "/users/password",
		`{"oldPassword":"oldsecret","newPassword":"newsecret","confirmPassword":"newsecret"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ChangePassword_WrongOld(t *testing.T) {
	e, profileUC := newUserTestEcho(t, 1)
	profileUC.EXPECT().ChangePassword(mock.Anything, int64(1), mock.Anything).
		Return(domainerrors.ErrInvalidOldPassword.WrapMessage("change password")).Once()

	rec := serve(e, jsonRequest(http.MethodPatch, "/users/password",
		`{"oldPassword":"wrongpass","newPassword":"newsecret","confirmPassword":"newsecret"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_OLD_PASSWORD", decode(t, rec).Error.Code)
}

func TestUserHandler_ChangePassword_Mismatch(t *testing.T) {
	e, _ := newUserTestEcho(t, 1)

	rec := serve(e, jsonRequest(http.MethodPatch, "/users/password",
		`{"oldPassword":"oldsecret","newPassword":"newsecret","confirmPassword":"different"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must match newPassword", decode(t, rec).Error.Details["confirmPassword"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
