package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-api/internal/config"
	"task-manager-api/internal/realtime"
	"task-manager-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig(requireAuth bool) *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		RequireAuth: requireAuth,
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := Setup(db, testConfig(false), realtime.NewHub())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOpenSurfaceByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := Setup(db, testConfig(false), realtime.NewHub())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthGatesCRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := Setup(db, testConfig(true), realtime.NewHub())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
