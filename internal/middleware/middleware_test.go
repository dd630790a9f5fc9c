package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fraud_awareness/internal/apperror"
	"fraud_awareness/internal/model"
	"fraud_awareness/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(testLogger()))
	r.GET("/me", JWTAuthMiddleware(jwtUtil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetInt(AuthUserKey),
			"role":   c.GetString(AuthRoleKey),
		})
	})
	r.GET("/admin", JWTAuthMiddleware(jwtUtil), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Error struct {
		Message   string `json:"message"`
		Status    int    `json:"status"`
		Timestamp string `json:"timestamp"`
	} `json:"error"`
	Errors []apperror.FieldError `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := testRouter(utils.NewJWTUtil("secret", 1))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Authentication token is required", env.Error.Message)
	assert.Equal(t, http.StatusUnauthorized, env.Error.Status)
	assert.NotEmpty(t, env.Error.Timestamp)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	r := testRouter(utils.NewJWTUtil("secret", 1))

	w := doRequest(r, "not.a.token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid or expired token", env.Error.Message)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	r := testRouter(utils.NewJWTUtil("secret", 1))

	other := utils.NewJWTUtil("other-secret", 1)
	token, err := other.GenerateToken(1, model.RoleUser)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_AttachesIdentity(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	r := testRouter(jwtUtil)

	token, err := jwtUtil.GenerateToken(42, model.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["userId"])
	assert.Equal(t, model.RoleAdmin, body["role"])
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	r := testRouter(jwtUtil)

	token, err := jwtUtil.GenerateToken(1, model.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Admin access required", env.Error.Message)
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	r := testRouter(jwtUtil)

	token, err := jwtUtil.GenerateToken(1, model.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(testLogger()))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("pool exhausted: connection refused"))
		c.Abort()
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Internal Server Error", env.Error.Message)
	assert.NotContains(t, w.Body.String(), "pool exhausted")
}

func TestErrorHandler_ValidationCarriesFieldList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(testLogger()))
	r.POST("/submit", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("Validation failed",
			apperror.FieldError{Field: "title", Message: "Title must be between 5 and 200 characters"},
			apperror.FieldError{Field: "description", Message: "Description must be at least 20 characters long"},
		))
		c.Abort()
	})

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", env.Error.Message)
	require.Len(t, env.Errors, 2)
	assert.Equal(t, "title", env.Errors[0].Field)
}

func TestErrorHandler_NotFoundMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(testLogger()))
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Report not found"))
		c.Abort()
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Report not found", env.Error.Message)
}
