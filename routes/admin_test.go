package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal-romeiro-server/database"
)

// unreachableDB opens a GORM handle whose connection pool points at a port
// nothing listens on. Opening succeeds (the pool is lazy, and the startup
// ping is disabled); every query then fails with a connection error.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=nobody dbname=nothing sslmode=disable",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestDashboardStatsReportsDatabaseFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	original := database.DB
	database.DB = unreachableDB(t)
	defer func() { database.DB = original }()

	router := gin.New()
	router.GET("/api/admin/dashboard/stats", GetDashboardStats)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/admin/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load dashboard stats")
	assert.NotContains(t, w.Body.String(), `"users":0`, "a failed counter must not report zeros")
}

func TestAdminLoginRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/admin/auth/login", AdminLogin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/auth/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
