package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

func authTestRouter(t *testing.T, users ...*models.User) (*gin.Engine, *utils.TokenManager) {
	t.Helper()

	store := newFakeUserStore(users...)
	tokens := utils.NewTokenManager("test-secret")
	authSvc := service.NewAuthService(store, tokens)
	adminSvc := service.NewAdministratorService(store, &fakeMailer{})
	h := NewAuthHandler(authSvc, adminSvc, false)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.GET("/me", h.Me)
	auth.GET("/session", h.Session)
	auth.POST("/change-password", h.ChangePassword)
	return router, tokens
}

func TestLoginSuccess(t *testing.T) {
	router, _ := authTestRouter(t, &models.User{
		Name:     "Admin",
		Email:    "admin@naturale.com",
		Password: hashPassword(t, "correct-password"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@naturale.com",
		"password": "correct-password",
	}))

	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin@naturale.com", user["email"])
	assert.Equal(t, false, user["firstLogin"])
	assert.NotContains(t, user, "password")
	// The login body carries only the trimmed user fields.
	assert.NotContains(t, user, "createdAt")
	assert.NotContains(t, user, "updatedAt")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.AuthCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestLoginFailures(t *testing.T) {
	router, _ := authTestRouter(t, &models.User{
		Name:     "Admin",
		Email:    "admin@naturale.com",
		Password: hashPassword(t, "correct-password"),
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", gin.H{"email": "admin@naturale.com"}))
		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error": "Email and password are required"}`, w.Body.String())
	})

	// Unknown email and wrong password return the same body.
	for _, payload := range []gin.H{
		{"email": "nobody@naturale.com", "password": "correct-password"},
		{"email": "admin@naturale.com", "password": "wrong-password"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/auth/login", payload))
		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error": "Invalid credentials"}`, w.Body.String())
	}
}

func TestMe(t *testing.T) {
	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@naturale.com",
		Password: hashPassword(t, "correct-password"),
	}
	router, tokens := authTestRouter(t, admin)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"user": null}`, w.Body.String())
	})

	t.Run("authenticated", func(t *testing.T) {
		token, err := tokens.Generate(admin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, admin.ID, user["id"])
	})
}

func TestChangePasswordHandler(t *testing.T) {
	admin := &models.User{
		Name:       "Admin",
		Email:      "admin@naturale.com",
		Password:   hashPassword(t, "old-password"),
		FirstLogin: true,
	}
	router, tokens := authTestRouter(t, admin)
	token, err := tokens.Generate(admin)
	require.NoError(t, err)

	send := func(t *testing.T, body gin.H, withToken bool) *httptest.ResponseRecorder {
		t.Helper()
		req := jsonRequest(t, http.MethodPost, "/api/auth/change-password", body)
		if withToken {
			req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("anonymous", func(t *testing.T) {
		w := send(t, gin.H{"currentPassword": "old-password", "newPassword": "new-password"}, false)
		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		w := send(t, gin.H{"currentPassword": "old-password"}, true)
		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error": "Missing required fields"}`, w.Body.String())
	})

	t.Run("wrong current password", func(t *testing.T) {
		w := send(t, gin.H{"currentPassword": "wrong", "newPassword": "new-password"}, true)
		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error": "Current password is incorrect"}`, w.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		w := send(t, gin.H{"currentPassword": "old-password", "newPassword": "new-password"}, true)
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message": "Password changed successfully"}`, w.Body.String())
	})
}
