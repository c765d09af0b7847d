package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "Alice Martin", "alice@example.com", "alice", "Password123")

	w := doJSON(t, router, http.MethodGet, "/user/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "Alice Martin", resp["nom"])
	assert.Equal(t, "alice@example.com", resp["email"])
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, "user", resp["role"])
	assert.NotContains(t, resp, "hashed_password")
}

func TestGetMeAccountDeleted(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "Alice Martin", "alice@example.com", "alice", "Password123")

	// The token outlives the account: a valid signature with no backing
	// row is a 404, not a 401.
	require.NoError(t, config.DB.Where("username = ?", "alice").Delete(&models.User{}).Error)

	w := doJSON(t, router, http.MethodGet, "/user/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangePassword(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "Alice Martin", "alice@example.com", "alice", "Password123")

	// Wrong old password.
	w := doJSON(t, router, http.MethodPut, "/user/change-password", token,
		gin.H{"old_password": "WrongPassword1", "new_password": "NewPassword123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// New password identical to the old one.
	w = doJSON(t, router, http.MethodPut, "/user/change-password", token,
		gin.H{"old_password": "Password123", "new_password": "Password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// New password failing the strength rules.
	w = doJSON(t, router, http.MethodPut, "/user/change-password", token,
		gin.H{"old_password": "Password123", "new_password": "weakpassword"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Genuine change.
	w = doJSON(t, router, http.MethodPut, "/user/change-password", token,
		gin.H{"old_password": "Password123", "new_password": "NewPassword123"})
	require.Equal(t, http.StatusNoContent, w.Code)

	// Old credentials no longer work, new ones do.
	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "Password123")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, router, "alice", "NewPassword123")
}
