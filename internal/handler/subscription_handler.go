package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/middleware"
	"github.com/antoniolaudieri/rimborsami/internal/service"
)

// SubscriptionHandler exposes the caller's subscription state. All routes
// sit behind the auth middleware.
type SubscriptionHandler struct {
	sessions service.SessionStore
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(sessions service.SessionStore) *SubscriptionHandler {
	return &SubscriptionHandler{sessions: sessions}
}

// GetSubscription handles GET /api/v1/subscription
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// Refresh handles POST /api/v1/subscription/refresh
func (h *SubscriptionHandler) Refresh(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Refetch(c.Request.Context()))
}

// Sync handles POST /api/v1/subscription/sync
func (h *SubscriptionHandler) Sync(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Sync(c.Request.Context()))
}

// Logout handles DELETE /api/v1/session
func (h *SubscriptionHandler) Logout(c *gin.Context) {
	h.sessions.Close(middleware.GetUserID(c))
	c.Status(http.StatusNoContent)
}

func (h *SubscriptionHandler) session(c *gin.Context) (service.SubscriptionSession, bool) {
	userID := middleware.GetUserID(c)
	session, err := h.sessions.Open(c.Request.Context(), userID, middleware.GetToken(c), middleware.GetTokenExpiry(c))
	if err != nil {
		if errors.Is(err, service.ErrSessionClosed) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
			return nil, false
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to open session",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open session"})
		return nil, false
	}
	return session, true
}
