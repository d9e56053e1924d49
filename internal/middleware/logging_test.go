package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/middleware"
)

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := logger.GetLogger()
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer logger.SetLogger(original)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog())
	router.GET("/api/v1/news/:slug", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "/api/v1/news/missing", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}
