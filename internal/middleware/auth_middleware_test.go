package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func setupAuthTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user_id": c.GetString("user_id"),
			"type":    c.GetString("user_type"),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func doAuthRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := setupAuthTestRouter()

	token, err := util.GenerateToken("user-1", "ravi@example.com", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	w := doAuthRequest(router, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["user_id"])
	assert.Equal(t, "admin", body["type"])
}

func TestAuthMiddleware_Failures(t *testing.T) {
	router := setupAuthTestRouter()

	expired, err := util.GenerateToken("user-1", "ravi@example.com", "admin", testSecret, -time.Minute)
	require.NoError(t, err)

	wrongSecret, err := util.GenerateToken("user-1", "ravi@example.com", "admin", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantError     string
	}{
		{"missing header", "", "AUTH_UNAUTHORIZED"},
		{"not a bearer token", "Basic abc123", "AUTH_TOKEN_INVALID"},
		{"garbage token", "Bearer not.a.token", "AUTH_TOKEN_INVALID"},
		{"wrong secret", "Bearer " + wrongSecret, "AUTH_TOKEN_INVALID"},
		{"expired token", "Bearer " + expired, "AUTH_TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthRequest(router, tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestRequireType(t *testing.T) {
	router := setupAuthTestRouter(RequireType("admin"))

	adminToken, err := util.GenerateToken("user-1", "admin@example.com", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	storeToken, err := util.GenerateToken("user-2", "store@example.com", "store", testSecret, time.Hour)
	require.NoError(t, err)

	w := doAuthRequest(router, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doAuthRequest(router, "Bearer "+storeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
