package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
	"github.com/antoniolaudieri/rimborsami/internal/repository"
)

// ErrSessionClosed is returned by Open once the manager has shut down.
var ErrSessionClosed = errors.New("session manager is shutting down")

// SessionManager owns one SubscriptionTracker per signed-in user. A
// tracker lives until logout, token expiry or shutdown.
type SessionManager struct {
	repo     repository.SubscriptionRepository
	syncer   SubscriptionSyncer
	interval time.Duration

	mu       sync.Mutex
	sessions map[string]*SubscriptionTracker
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(repo repository.SubscriptionRepository, syncer SubscriptionSyncer, interval time.Duration) *SessionManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionManager{
		repo:     repo,
		syncer:   syncer,
		interval: interval,
		sessions: make(map[string]*SubscriptionTracker),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Open returns the user's tracker. A new tracker reads the cached row
// before returning and then starts its poll; an existing one only takes
// the fresh token.
func (m *SessionManager) Open(ctx context.Context, userID, token string, expiresAt time.Time) (SubscriptionSession, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrSessionClosed
	}
	var stale *SubscriptionTracker
	if existing, ok := m.sessions[userID]; ok {
		if !existing.stopped() {
			// Updated under m.mu so a concurrent expiry sees the new token.
			existing.UpdateToken(token, expiresAt)
			m.mu.Unlock()
			return existing, nil
		}
		stale = existing
		delete(m.sessions, userID)
		metrics.ActiveSessions.Dec()
	}

	tracker := NewSubscriptionTracker(userID, token, expiresAt, m.repo, m.syncer, m.interval)
	tracker.onExpire = func() bool { return m.remove(userID, tracker) }
	m.sessions[userID] = tracker
	metrics.ActiveSessions.Inc()
	m.mu.Unlock()

	if stale != nil {
		stale.Stop()
	}

	logger.WithUserID(userID).InfoContext(ctx, "Session opened", slog.Time("expires_at", expiresAt))

	tracker.Refetch(ctx)
	tracker.Start(m.ctx)
	return tracker, nil
}

// Get returns the user's tracker if a session is open.
func (m *SessionManager) Get(userID string) (*SubscriptionTracker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tracker, ok := m.sessions[userID]
	return tracker, ok
}

// Close ends the user's session and stops its poll.
func (m *SessionManager) Close(userID string) bool {
	m.mu.Lock()
	tracker, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
		metrics.ActiveSessions.Dec()
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	tracker.Stop()
	logger.WithUserID(userID).Info("Session closed")
	return true
}

// Len returns the number of open sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown stops every session and rejects new ones.
func (m *SessionManager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	trackers := make([]*SubscriptionTracker, 0, len(m.sessions))
	for id, tracker := range m.sessions {
		trackers = append(trackers, tracker)
		delete(m.sessions, id)
		metrics.ActiveSessions.Dec()
	}
	m.mu.Unlock()

	m.cancel()
	for _, tracker := range trackers {
		tracker.Stop()
	}
	logger.Info("Session manager stopped", slog.Int("sessions", len(trackers)))
}

// remove drops an expired tracker and reports whether it should stop. A
// token refreshed by Open after the poll saw the expiry keeps the tracker
// alive. It runs on the tracker's own goroutine, so it must not wait for
// the tracker to stop.
func (m *SessionManager) remove(userID string, tracker *SubscriptionTracker) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.sessions[userID]
	if !ok || current != tracker {
		return true
	}
	if !tracker.Expired() {
		return false
	}
	delete(m.sessions, userID)
	metrics.ActiveSessions.Dec()
	return true
}
