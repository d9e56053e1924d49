package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func newHealthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		path       string
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, "/health", http.StatusOK, `{"status":"healthy","version":"1.2.0","services":{"database":"healthy"}}`},
		{"unhealthy", errors.New("down"), "/health", http.StatusServiceUnavailable, `{"status":"unhealthy","services":{"database":"unhealthy"}}`},
		{"ready", nil, "/ready", http.StatusOK, `{"status":"ready"}`},
		{"not ready", errors.New("down"), "/ready", http.StatusServiceUnavailable, `{"status":"not ready"}`},
		{"live ignores database", errors.New("down"), "/live", http.StatusOK, `{"status":"alive"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(stubPinger{err: tt.pingErr}, "1.2.0")

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			newHealthRouter(handler).ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			require.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
