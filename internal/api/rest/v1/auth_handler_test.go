//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	f := newAPIFixture(t)
	user := f.accounts[accounts.RoleManagement]
	expiresAt := time.Now().Add(8 * time.Hour)

	f.auth.On("Login", mock.Anything, "management@neic.gov.bd", "correct-horse", mock.Anything).
		Return(&auth.Session{Token: "signed-token", ExpiresAt: expiresAt, User: user}, nil)

	w := f.doJSON(http.MethodPost, "/api/auth/login", "", `{"email":"management@neic.gov.bd","password":"correct-horse"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "neic_session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	f.auth.AssertExpectations(t)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	f := newAPIFixture(t)

	w := f.doJSON(http.MethodPost, "/api/auth/login", "", `{"email":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, auth.ErrInvalidCredentials)

	w := f.doJSON(http.MethodPost, "/api/auth/login", "", `{"email":"a@neic.gov.bd","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &auth.LockoutError{RetryAfter: 89500 * time.Millisecond})

	w := f.doJSON(http.MethodPost, "/api/auth/login", "", `{"email":"a@neic.gov.bd","password":"wrong"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "90", w.Header().Get("Retry-After"))
}

func TestAuthHandler_Login_Disabled(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, auth.ErrAccountDisabled)

	w := f.doJSON(http.MethodPost, "/api/auth/login", "", `{"email":"a@neic.gov.bd","password":"secret123"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAPIFixture(t)
	user := f.accounts[accounts.RoleViewer]
	f.auth.On("Logout", mock.Anything, user.ID, mock.Anything).Return()

	w := f.doJSON(http.MethodPost, "/api/auth/logout", accounts.RoleViewer, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	f.auth.AssertExpectations(t)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	f := newAPIFixture(t)

	w := f.doJSON(http.MethodPost, "/api/auth/logout", "", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	f.auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Session(t *testing.T) {
	f := newAPIFixture(t)

	w := f.doJSON(http.MethodGet, "/api/auth/session", accounts.RoleSupport, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, f.accounts[accounts.RoleSupport].ID, resp.User.ID)
	assert.Equal(t, accounts.RoleSupport, resp.User.Role)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	f := newAPIFixture(t)
	user := f.accounts[accounts.RoleViewer]
	f.auth.On("ChangePassword", mock.Anything, user.ID, "old-password", "new-password", mock.Anything).Return(nil)

	w := f.doJSON(http.MethodPost, "/api/auth/password", accounts.RoleViewer, `{"currentPassword":"old-password","newPassword":"new-password"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	f.auth.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword_TooShort(t *testing.T) {
	f := newAPIFixture(t)

	w := f.doJSON(http.MethodPost, "/api/auth/password", accounts.RoleViewer, `{"currentPassword":"old-password","newPassword":"short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NewPassword")
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.On("ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.New(apperrors.CodeInvalidArgument, "current password is incorrect"))

	w := f.doJSON(http.MethodPost, "/api/auth/password", accounts.RoleAdmin, `{"currentPassword":"nope-nope","newPassword":"new-password"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"current password is incorrect"}`, w.Body.String())
}
