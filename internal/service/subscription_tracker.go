package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/infrastructure/payments"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
	"github.com/antoniolaudieri/rimborsami/internal/repository"
)

// DefaultPollInterval is how often a session reconciles its subscription.
const DefaultPollInterval = 60 * time.Second

// SubscriptionSyncer triggers reconciliation with the payment provider.
type SubscriptionSyncer interface {
	Sync(ctx context.Context, token string) error
}

// SubscriptionState is a snapshot of a user's subscription.
type SubscriptionState struct {
	Subscription    *domain.Subscription `json:"subscription"`
	IsPremium       bool                 `json:"is_premium"`
	IsFree          bool                 `json:"is_free"`
	Loading         bool                 `json:"loading"`
	Syncing         bool                 `json:"syncing"`
	LastRefreshedAt *time.Time           `json:"last_refreshed_at,omitempty"`
}

// SubscriptionTracker keeps the subscription state of one signed-in user
// and reconciles it periodically while the session lives. Errors never
// reach the caller: they are logged and the state falls back to free.
type SubscriptionTracker struct {
	userID   string
	repo     repository.SubscriptionRepository
	syncer   SubscriptionSyncer
	interval time.Duration
	now      func() time.Time
	// onExpire decides whether an expired tracker stops; false means the
	// token was refreshed in the meantime and polling continues.
	onExpire func() bool

	mu        sync.RWMutex
	state     SubscriptionState
	token     string
	expiresAt time.Time

	syncMu sync.Mutex

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewSubscriptionTracker creates a tracker in the loading state.
func NewSubscriptionTracker(
	userID, token string,
	expiresAt time.Time,
	repo repository.SubscriptionRepository,
	syncer SubscriptionSyncer,
	interval time.Duration,
) *SubscriptionTracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &SubscriptionTracker{
		userID:    userID,
		repo:      repo,
		syncer:    syncer,
		interval:  interval,
		now:       time.Now,
		state:     SubscriptionState{IsFree: true, Loading: true},
		token:     token,
		expiresAt: expiresAt,
		done:      make(chan struct{}),
	}
}

// UserID returns the owner of the tracker.
func (t *SubscriptionTracker) UserID() string {
	return t.userID
}

// State returns the current snapshot.
func (t *SubscriptionTracker) State() SubscriptionState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// UpdateToken replaces the bearer token used for reconciliation.
func (t *SubscriptionTracker) UpdateToken(token string, expiresAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
	t.expiresAt = expiresAt
}

// Expired reports whether the session token has expired.
func (t *SubscriptionTracker) Expired() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return !t.expiresAt.IsZero() && !t.now().Before(t.expiresAt)
}

// Refetch re-reads the cached subscription row.
func (t *SubscriptionTracker) Refetch(ctx context.Context) SubscriptionState {
	return t.refetch(ctx, "manual")
}

func (t *SubscriptionTracker) refetch(ctx context.Context, trigger string) SubscriptionState {
	t.mu.Lock()
	t.state.Loading = true
	t.mu.Unlock()

	sub, err := t.repo.GetByUserID(ctx, t.userID)
	result := "success"
	if err != nil {
		logger.WithUserID(t.userID).ErrorContext(ctx, "Failed to load subscription", slog.Any("error", err))
		sub = nil
		result = "error"
	}
	metrics.SubscriptionRefreshesTotal.WithLabelValues(trigger, result).Inc()

	now := t.now()
	premium := sub.IsPremium(now)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Subscription = sub
	t.state.IsPremium = premium
	t.state.IsFree = !premium
	t.state.Loading = false
	t.state.LastRefreshedAt = &now
	return t.state
}

// Sync asks the payment provider to reconcile and then re-reads the row.
// Concurrent calls are serialized.
func (t *SubscriptionTracker) Sync(ctx context.Context) SubscriptionState {
	t.syncMu.Lock()
	defer t.syncMu.Unlock()

	t.mu.Lock()
	t.state.Syncing = true
	token := t.token
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.state.Syncing = false
		t.mu.Unlock()
	}()

	err := t.syncer.Sync(ctx, token)
	switch {
	case err == nil:
		metrics.SubscriptionSyncsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, payments.ErrNotConfigured):
		metrics.SubscriptionSyncsTotal.WithLabelValues("skipped").Inc()
	default:
		metrics.SubscriptionSyncsTotal.WithLabelValues("error").Inc()
		logger.WithUserID(t.userID).WarnContext(ctx, "Subscription sync failed", slog.Any("error", err))
	}

	state := t.refetch(ctx, "sync")
	state.Syncing = false
	return state
}

// Start runs a sync immediately and then every poll interval until Stop
// is called, ctx ends or the session token expires.
func (t *SubscriptionTracker) Start(ctx context.Context) {
	t.startOnce.Do(func() {
		ctx, t.cancel = context.WithCancel(ctx)
		go t.run(ctx)
	})
}

func (t *SubscriptionTracker) run(ctx context.Context) {
	defer close(t.done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.Sync(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if t.Expired() && (t.onExpire == nil || t.onExpire()) {
				logger.WithUserID(t.userID).Info("Session token expired, stopping subscription poll")
				return
			}
			t.Sync(ctx)
		}
	}
}

// Stop cancels the poll and waits for it to return. Safe to call more
// than once and before Start.
func (t *SubscriptionTracker) Stop() {
	t.stopOnce.Do(func() {
		t.startOnce.Do(func() {})
		if t.cancel == nil {
			close(t.done)
			return
		}
		t.cancel()
		<-t.done
	})
}

// stopped reports whether the poll loop has returned.
func (t *SubscriptionTracker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done is closed when the poll loop has returned.
func (t *SubscriptionTracker) Done() <-chan struct{} {
	return t.done
}
