package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/infrastructure/payments"
	"github.com/antoniolaudieri/rimborsami/internal/mocks"
	"github.com/antoniolaudieri/rimborsami/internal/service"
)

func activeAnnual(userID string) *domain.Subscription {
	return &domain.Subscription{
		ID:     uuid.New().String(),
		UserID: userID,
		Plan:   domain.PlanAnnual,
		Status: domain.SubscriptionActive,
	}
}

func TestSubscriptionTracker_Refetch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("no row means free", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, nil)

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, time.Minute)
		assert.True(t, tracker.State().Loading)

		state := tracker.Refetch(ctx)

		assert.False(t, state.IsPremium)
		assert.True(t, state.IsFree)
		assert.False(t, state.Loading)
		assert.Nil(t, state.Subscription)
		assert.NotNil(t, state.LastRefreshedAt)
	})

	t.Run("active annual is premium", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(activeAnnual(userID), nil)

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, time.Minute)
		state := tracker.Refetch(ctx)

		assert.True(t, state.IsPremium)
		assert.False(t, state.IsFree)
		require.NotNil(t, state.Subscription)
		assert.Equal(t, domain.PlanAnnual, state.Subscription.Plan)
	})

	t.Run("query failure degrades to free", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, errors.New("boom"))

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, time.Minute)
		state := tracker.Refetch(ctx)

		assert.True(t, state.IsFree)
		assert.False(t, state.Loading)
	})
}

func TestSubscriptionTracker_Sync(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("reconciles with the session token then re-reads", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		syncer.EXPECT().Sync(mock.Anything, "tok-2").Return(nil).Once()
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(activeAnnual(userID), nil).Once()

		tracker := service.NewSubscriptionTracker(userID, "tok-1", time.Now().Add(time.Hour), repo, syncer, time.Minute)
		tracker.UpdateToken("tok-2", time.Now().Add(2*time.Hour))

		state := tracker.Sync(ctx)

		assert.True(t, state.IsPremium)
		assert.False(t, state.Syncing)
		assert.False(t, tracker.State().Syncing)
	})

	t.Run("failing reconciliation still re-reads", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		syncer.EXPECT().Sync(mock.Anything, "tok").Return(payments.ErrUnexpectedStatus).Once()
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, nil).Once()

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, time.Minute)
		state := tracker.Sync(ctx)

		assert.True(t, state.IsFree)
	})

	t.Run("concurrent syncs are serialized", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)

		var inFlight, maxInFlight atomic.Int32
		syncer.EXPECT().Sync(mock.Anything, "tok").RunAndReturn(func(context.Context, string) error {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		}).Times(3)
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, nil).Times(3)

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, time.Minute)

		done := make(chan struct{})
		for i := 0; i < 3; i++ {
			go func() {
				tracker.Sync(ctx)
				done <- struct{}{}
			}()
		}
		for i := 0; i < 3; i++ {
			<-done
		}

		assert.Equal(t, int32(1), maxInFlight.Load())
	})
}

func TestSubscriptionTracker_StartStop(t *testing.T) {
	userID := uuid.New().String()

	t.Run("syncs immediately and on every tick until stopped", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)

		var syncs atomic.Int32
		syncer.EXPECT().Sync(mock.Anything, "tok").RunAndReturn(func(context.Context, string) error {
			syncs.Add(1)
			return nil
		})
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, nil)

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour), repo, syncer, 10*time.Millisecond)
		tracker.Start(context.Background())

		require.Eventually(t, func() bool { return syncs.Load() >= 3 }, time.Second, 5*time.Millisecond)

		tracker.Stop()
		stopped := syncs.Load()
		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, stopped, syncs.Load(), "no syncs after Stop")

		select {
		case <-tracker.Done():
		default:
			t.Fatal("Done should be closed after Stop")
		}
		tracker.Stop()
	})

	t.Run("stops when the token expires", func(t *testing.T) {
		repo := mocks.NewMockSubscriptionRepository(t)
		syncer := mocks.NewMockSubscriptionSyncer(t)
		syncer.EXPECT().Sync(mock.Anything, "tok").Return(nil)
		repo.EXPECT().GetByUserID(mock.Anything, userID).Return(nil, nil)

		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(20*time.Millisecond), repo, syncer, 10*time.Millisecond)
		tracker.Start(context.Background())

		select {
		case <-tracker.Done():
		case <-time.After(time.Second):
			t.Fatal("tracker did not stop after token expiry")
		}
		assert.True(t, tracker.Expired())
	})

	t.Run("stop before start", func(t *testing.T) {
		tracker := service.NewSubscriptionTracker(userID, "tok", time.Now().Add(time.Hour),
			mocks.NewMockSubscriptionRepository(t), mocks.NewMockSubscriptionSyncer(t), time.Minute)

		tracker.Stop()
		tracker.Start(context.Background())

		select {
		case <-tracker.Done():
		default:
			t.Fatal("Done should be closed")
		}
	})
}
