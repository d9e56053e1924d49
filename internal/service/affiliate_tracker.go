package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
)

const (
	// DefaultClickBufferSize is the default capacity of the click queue.
	DefaultClickBufferSize = 256
	// PublishTimeout bounds a single publish to the broker.
	PublishTimeout = 5 * time.Second
)

// ClickPublisher delivers encoded click events.
type ClickPublisher interface {
	Publish(ctx context.Context, body []byte) error
}

// AffiliateTracker records outbound partner clicks. Track never blocks:
// events go into a bounded buffer drained by a single worker, a full
// buffer drops the event and publish failures are only logged.
type AffiliateTracker struct {
	publisher ClickPublisher
	events    chan domain.AffiliateClick
	now       func() time.Time

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewAffiliateTracker starts the worker. A nil publisher logs events instead.
func NewAffiliateTracker(publisher ClickPublisher, bufferSize int) *AffiliateTracker {
	if bufferSize < 1 {
		bufferSize = DefaultClickBufferSize
	}
	t := &AffiliateTracker{
		publisher: publisher,
		events:    make(chan domain.AffiliateClick, bufferSize),
		now:       time.Now,
	}

	t.wg.Add(1)
	go t.worker()

	return t
}

// Track queues the click and reports whether it was accepted.
func (t *AffiliateTracker) Track(click domain.AffiliateClick) bool {
	click.Partner = strings.ToLower(strings.TrimSpace(click.Partner))
	if click.ID == "" {
		click.ID = uuid.New().String()
	}
	if click.OccurredAt.IsZero() {
		click.OccurredAt = t.now().UTC()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		metrics.AffiliateClicksDropped.WithLabelValues("closed").Inc()
		return false
	}

	select {
	case t.events <- click:
		metrics.AffiliateClicksTotal.WithLabelValues(click.Partner, click.Source).Inc()
		return true
	default:
		metrics.AffiliateClicksDropped.WithLabelValues("buffer_full").Inc()
		logger.Warn("Affiliate click dropped, buffer full",
			slog.String("partner", click.Partner),
			slog.String("request_id", click.RequestID),
		)
		return false
	}
}

func (t *AffiliateTracker) worker() {
	defer t.wg.Done()

	for click := range t.events {
		t.deliver(click)
	}
}

func (t *AffiliateTracker) deliver(click domain.AffiliateClick) {
	log := logger.WithRequestID(click.RequestID)

	if t.publisher == nil {
		log.Info("Affiliate click",
			slog.String("partner", click.Partner),
			slog.String("source", click.Source),
			slog.String("category", click.Category),
		)
		return
	}

	body, err := json.Marshal(click)
	if err != nil {
		metrics.AffiliateClicksDropped.WithLabelValues("encode").Inc()
		log.Error("Failed to encode affiliate click", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
	defer cancel()
	if err := t.publisher.Publish(ctx, body); err != nil {
		metrics.AffiliateClicksDropped.WithLabelValues("publish").Inc()
		log.Warn("Failed to publish affiliate click",
			slog.String("partner", click.Partner),
			slog.Any("error", err),
		)
	}
}

// Close stops accepting clicks, drains the buffer and waits for the worker.
func (t *AffiliateTracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.events)
	t.mu.Unlock()

	t.wg.Wait()
}

// PartnerLinks maps partner codes to outbound URLs.
type PartnerLinks struct {
	links       map[string]string
	defaultLink string
}

// NewPartnerLinks builds the directory; keys are matched case-insensitively.
func NewPartnerLinks(links map[string]string, defaultLink string) *PartnerLinks {
	normalized := make(map[string]string, len(links))
	for partner, link := range links {
		normalized[strings.ToLower(strings.TrimSpace(partner))] = link
	}
	return &PartnerLinks{links: normalized, defaultLink: defaultLink}
}

// Link returns the partner URL, or the default link for unknown partners.
// The boolean is false when neither is available.
func (p *PartnerLinks) Link(partner string) (string, bool) {
	if link, ok := p.links[strings.ToLower(strings.TrimSpace(partner))]; ok {
		return link, true
	}
	if p.defaultLink != "" {
		return p.defaultLink, true
	}
	return "", false
}
