package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
	"github.com/antoniolaudieri/rimborsami/internal/mocks"
	"github.com/antoniolaudieri/rimborsami/internal/service"
)

func TestAffiliateTracker(t *testing.T) {
	t.Run("publishes clicks as json", func(t *testing.T) {
		publisher := mocks.NewMockClickPublisher(t)

		var mu sync.Mutex
		var published []domain.AffiliateClick
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, body []byte) error {
			var click domain.AffiliateClick
			if err := json.Unmarshal(body, &click); err != nil {
				return err
			}
			mu.Lock()
			published = append(published, click)
			mu.Unlock()
			return nil
		}).Times(2)

		tracker := service.NewAffiliateTracker(publisher, 8)
		fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		tracker.SetClock(func() time.Time { return fixed })

		assert.True(t, tracker.Track(domain.AffiliateClick{Partner: " Facile ", Source: "comparator", Category: "energy"}))
		assert.True(t, tracker.Track(domain.AffiliateClick{Partner: "segugio", Source: "news_article"}))
		tracker.Close()

		require.Len(t, published, 2)
		assert.Equal(t, "facile", published[0].Partner)
		assert.NotEmpty(t, published[0].ID)
		assert.True(t, fixed.Equal(published[0].OccurredAt))
	})

	t.Run("publish failures are swallowed", func(t *testing.T) {
		publisher := mocks.NewMockClickPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()
		before := testutil.ToFloat64(metrics.AffiliateClicksDropped.WithLabelValues("publish"))

		tracker := service.NewAffiliateTracker(publisher, 1)
		assert.True(t, tracker.Track(domain.AffiliateClick{Partner: "facile", Source: "dashboard"}))
		tracker.Close()

		assert.Equal(t, before+1, testutil.ToFloat64(metrics.AffiliateClicksDropped.WithLabelValues("publish")))
	})

	t.Run("full buffer drops without blocking", func(t *testing.T) {
		publisher := mocks.NewMockClickPublisher(t)
		release := make(chan struct{})
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, []byte) error {
			<-release
			return nil
		}).Maybe()

		tracker := service.NewAffiliateTracker(publisher, 1)

		accepted := 0
		for i := 0; i < 10; i++ {
			if tracker.Track(domain.AffiliateClick{Partner: "facile", Source: "email"}) {
				accepted++
			}
		}
		close(release)
		tracker.Close()

		assert.Less(t, accepted, 10)
		assert.GreaterOrEqual(t, accepted, 1)
	})

	t.Run("track after close is rejected", func(t *testing.T) {
		tracker := service.NewAffiliateTracker(nil, 4)
		tracker.Close()
		tracker.Close()

		assert.False(t, tracker.Track(domain.AffiliateClick{Partner: "facile", Source: "email"}))
	})

	t.Run("nil publisher logs instead", func(t *testing.T) {
		tracker := service.NewAffiliateTracker(nil, 4)
		assert.True(t, tracker.Track(domain.AffiliateClick{Partner: "facile", Source: "email"}))
		tracker.Close()
	})
}

func TestPartnerLinks(t *testing.T) {
	links := service.NewPartnerLinks(map[string]string{"Facile": "https://www.facile.it/?ref=rimborsami"}, "")

	link, ok := links.Link("FACILE")
	assert.True(t, ok)
	assert.Equal(t, "https://www.facile.it/?ref=rimborsami", link)

	_, ok = links.Link("unknown")
	assert.False(t, ok)

	withDefault := service.NewPartnerLinks(nil, "https://www.segugio.it")
	link, ok = withDefault.Link("unknown")
	assert.True(t, ok)
	assert.Equal(t, "https://www.segugio.it", link)
}
