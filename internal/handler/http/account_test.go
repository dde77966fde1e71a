package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchagin/smart-water/internal/store"
	"github.com/akorchagin/smart-water/internal/utils"
	"github.com/akorchagin/smart-water/models"
)

// authedRequest builds a request whose context already carries the
// authenticated account ID, as the auth middleware would.
func authedRequest(method, target string, body string, accountID int64) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), utils.AccountIDCtxKey, accountID)
	return req.WithContext(ctx)
}

func TestAccount_Success(t *testing.T) {
	svc := &mockUserService{
		accountByIDFn: func(_ context.Context, accountID int64) (models.Account, error) {
			require.Equal(t, int64(42), accountID)
			return models.Account{
				AccountID: 42,
				Email:     "resident@example.com",
				FirstName: "Jamila",
				IsActive:  true,
				Profile:   &models.Profile{MobileNo: "+254700000001"},
			}, nil
		},
	}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	h.account(rec, authedRequest(http.MethodGet, "/api/account", "", 42))

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "resident@example.com", response["email"])

	profile, ok := response["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "+254700000001", profile["mobile_no"])
}

func TestAccount_NoIdentityInContext(t *testing.T) {
	h := newTestHandler(&mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
	rec := httptest.NewRecorder()

	h.account(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	svc := &mockUserService{
		updateProfileFn: func(_ context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error) {
			require.Equal(t, int64(42), accountID)
			require.NotNil(t, update.Address)
			assert.Equal(t, "14 Riverside Dr", *update.Address)
			return models.Profile{ProfileID: 7, AccountID: 42, MobileNo: "+254700000001", Address: *update.Address}, nil
		},
	}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	h.updateProfile(rec, authedRequest(http.MethodPut, "/api/account/profile",
		`{"address":"14 Riverside Dr"}`, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "14 Riverside Dr")
}

func TestUpdateProfile_ProfileMissing(t *testing.T) {
	svc := &mockUserService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdate) (models.Profile, error) {
			return models.Profile{}, store.ErrProfileNotFound
		},
	}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	h.updateProfile(rec, authedRequest(http.MethodPut, "/api/account/profile",
		`{"address":"14 Riverside Dr"}`, 42))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangePassword_Success(t *testing.T) {
	passwordHash, err := utils.HashPassword("old password here")
	require.NoError(t, err)

	changed := false
	svc := &mockUserService{
		accountByIDFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{AccountID: 42, PasswordHash: passwordHash, IsActive: true}, nil
		},
		setPasswordFn: func(_ context.Context, accountID int64, newPassword string) error {
			changed = true
			assert.Equal(t, int64(42), accountID)
			assert.Equal(t, "brand new password", newPassword)
			return nil
		},
	}
	h := newTestHandler(svc)

	body := `{"current_password":"old password here","password":"brand new password","password_confirm":"brand new password"}`
	rec := httptest.NewRecorder()
	h.changePassword(rec, authedRequest(http.MethodPost, "/api/account/password", body, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, changed)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	passwordHash, err := utils.HashPassword("old password here")
	require.NoError(t, err)

	svc := &mockUserService{
		accountByIDFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{AccountID: 42, PasswordHash: passwordHash}, nil
		},
	}
	h := newTestHandler(svc)

	body := `{"current_password":"guess","password":"brand new password","password_confirm":"brand new password"}`
	rec := httptest.NewRecorder()
	h.changePassword(rec, authedRequest(http.MethodPost, "/api/account/password", body, 42))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "current password is incorrect")
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	h := newTestHandler(&mockUserService{})

	body := `{"current_password":"old password here","password":"short","password_confirm":"short"}`
	rec := httptest.NewRecorder()
	h.changePassword(rec, authedRequest(http.MethodPost, "/api/account/password", body, 42))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errPasswordTooShort.Error())
}
