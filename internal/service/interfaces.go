package service

import (
	"context"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
)

// ContentServiceInterface defines the read side of the news, author and
// opportunity sections. Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// ListNews returns published article cards; failures yield an empty list.
	ListNews(ctx context.Context, filter domain.NewsFilter) []ArticleCard
	// GetArticle returns the article detail, or nil when absent or on failure.
	GetArticle(ctx context.Context, slug string) *ArticleDetail
	// RelatedArticles returns up to three articles from the same category.
	RelatedArticles(ctx context.Context, slug string) []ArticleCard
	// ListAuthors returns every author with a derived article count.
	ListAuthors(ctx context.Context) []domain.NewsAuthor
	// GetAuthor returns the author and their published articles, or nil.
	GetAuthor(ctx context.Context, slug string) *AuthorProfile
	// ListOpportunities returns active opportunities with their urgency.
	ListOpportunities(ctx context.Context, category string) []OpportunityView
}

// SitemapServiceInterface renders the XML sitemaps.
type SitemapServiceInterface interface {
	// Generate always returns a well-formed document; result reports
	// whether the fallback was served.
	Generate(ctx context.Context, kind SitemapKind) (body []byte, result string)
}

// SubscriptionSession is the per-user subscription state tracker.
type SubscriptionSession interface {
	State() SubscriptionState
	Refetch(ctx context.Context) SubscriptionState
	Sync(ctx context.Context) SubscriptionState
}

// SessionStore owns the subscription trackers of signed-in users.
type SessionStore interface {
	// Open returns the user's session, starting one if needed.
	Open(ctx context.Context, userID, token string, expiresAt time.Time) (SubscriptionSession, error)
	// Close stops the user's session; it reports whether one existed.
	Close(userID string) bool
}

// ClickTracker accepts affiliate clicks without blocking the caller.
type ClickTracker interface {
	// Track queues the click; false means it was dropped.
	Track(click domain.AffiliateClick) bool
}

// PartnerDirectory resolves affiliate partner codes to outbound links.
type PartnerDirectory interface {
	Link(partner string) (string, bool)
}
