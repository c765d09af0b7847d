package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/config/seeders"
	"github.com/Jackson-git-lab/players-api/controllers"
	"github.com/Jackson-git-lab/players-api/models"
	"github.com/Jackson-git-lab/players-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter builds the full engine against a fresh sqlite database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-signing-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Player{}, &models.Hero{}))
	config.DB = db

	router := gin.New()
	router.GET("/health", controllers.HealthCheck)
	routes.SetupAuthRoutes(router)
	routes.SetupPlayerRoutes(router)
	routes.SetupUserRoutes(router)
	routes.SetupAdminRoutes(router)
	routes.SetupHeroRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, router *gin.Engine, nom, email, username, password string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"nom":      nom,
		"email":    email,
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func registerAndLogin(t *testing.T, router *gin.Engine, nom, email, username, password string) string {
	t.Helper()
	registerUser(t, router, nom, email, username, password)
	return login(t, router, username, password)
}

// adminLogin seeds the initial admin account and logs in with it.
func adminLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	seeders.SeedAdminUser()
	return login(t, router, "admin", "Admin1234")
}

func createPlayer(t *testing.T, router *gin.Engine, token string, body gin.H) models.Player {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/player/create", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var player models.Player
	decodeBody(t, w, &player)
	require.NotZero(t, player.ID)
	return player
}
