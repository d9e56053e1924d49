package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/middleware"
	"github.com/antoniolaudieri/rimborsami/internal/mocks"
	"github.com/antoniolaudieri/rimborsami/internal/service"
)

const testUserID = "6f1c2a7e-3b5d-4c8e-9a0f-1d2e3f4a5b6c"

var testTokenExpiry = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// authenticated stands in for middleware.Auth.
func authenticated(c *gin.Context) {
	c.Set(middleware.UserIDKey, testUserID)
	c.Set(middleware.TokenKey, "token-abc")
	c.Set(middleware.TokenExpiryKey, testTokenExpiry)
	c.Next()
}

func newSubscriptionRouter(h *SubscriptionHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1", authenticated)
	api.GET("/subscription", h.GetSubscription)
	api.POST("/subscription/refresh", h.Refresh)
	api.POST("/subscription/sync", h.Sync)
	api.DELETE("/session", h.Logout)
	return router
}

func premiumState() service.SubscriptionState {
	return service.SubscriptionState{
		Subscription: &domain.Subscription{UserID: testUserID, Plan: domain.PlanMonthly, Status: domain.SubscriptionActive},
		IsPremium:    true,
	}
}

func TestGetSubscription(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	session := mocks.NewMockSubscriptionSession(t)
	handler := NewSubscriptionHandler(store)

	store.EXPECT().Open(mock.Anything, testUserID, "token-abc", testTokenExpiry).Return(session, nil)
	session.EXPECT().State().Return(premiumState())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	w := httptest.NewRecorder()
	newSubscriptionRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"is_premium":true`)
	require.Contains(t, w.Body.String(), `"is_free":false`)
}

func TestRefreshSubscription(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	session := mocks.NewMockSubscriptionSession(t)
	handler := NewSubscriptionHandler(store)

	store.EXPECT().Open(mock.Anything, testUserID, "token-abc", testTokenExpiry).Return(session, nil)
	session.EXPECT().Refetch(mock.Anything).Return(service.SubscriptionState{IsFree: true})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/refresh", nil)
	w := httptest.NewRecorder()
	newSubscriptionRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"is_free":true`)
	require.Contains(t, w.Body.String(), `"subscription":null`)
}

func TestSyncSubscription(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	session := mocks.NewMockSubscriptionSession(t)
	handler := NewSubscriptionHandler(store)

	store.EXPECT().Open(mock.Anything, testUserID, "token-abc", testTokenExpiry).Return(session, nil)
	session.EXPECT().Sync(mock.Anything).Return(premiumState())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/sync", nil)
	w := httptest.NewRecorder()
	newSubscriptionRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"is_premium":true`)
}

func TestGetSubscription_ShuttingDown(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	handler := NewSubscriptionHandler(store)

	store.EXPECT().Open(mock.Anything, testUserID, "token-abc", testTokenExpiry).Return(nil, service.ErrSessionClosed)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	w := httptest.NewRecorder()
	newSubscriptionRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetSubscription_OpenFails(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	handler := NewSubscriptionHandler(store)

	store.EXPECT().Open(mock.Anything, testUserID, "token-abc", testTokenExpiry).Return(nil, errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	w := httptest.NewRecorder()
	newSubscriptionRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"failed to open session"}`, w.Body.String())
}

func TestLogout(t *testing.T) {
	for _, existed := range []bool{true, false} {
		store := mocks.NewMockSessionStore(t)
		handler := NewSubscriptionHandler(store)

		store.EXPECT().Close(testUserID).Return(existed)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil)
		w := httptest.NewRecorder()
		newSubscriptionRouter(handler).ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
	}
}
