package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/database"
	"internal-task-api/internal/middleware"
	"internal-task-api/internal/settings"
	"internal-task-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a fresh in-memory database and the full protected
// surface the way routes.SetupRoutes does, minus logging middleware.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	settings.Default.Reset()

	r := gin.New()
	r.POST("/token", IssueToken)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/users", CreateUser)
		protected.GET("/users/me", GetMe)
		protected.GET("/users", GetAllUsers)
		protected.POST("/tasks", CreateTasks)
		protected.GET("/tasks", GetTasks)
		protected.PUT("/tasks/:id", UpdateTask)
		protected.POST("/reports", CreateReport)
		protected.GET("/reports", GetReports)
		protected.GET("/stats/dashboard", GetDashboardStats)
	}
	return r
}

func tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(username)
	require.NoError(t, err)
	return token
}

// doJSON performs a JSON request; token may be empty for public endpoints.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
