package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
)

// psql builds Postgres statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewsArticleRepository defines read access to published news articles.
type NewsArticleRepository interface {
	ListPublished(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsArticle, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error)
	ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]domain.NewsArticle, error)
	StreamPublished(ctx context.Context, limit int, callback func(domain.NewsArticle) error) error
}

// NewsAuthorRepository defines read access to news authors.
type NewsAuthorRepository interface {
	List(ctx context.Context) ([]domain.NewsAuthor, error)
	GetBySlug(ctx context.Context, slug string) (*domain.NewsAuthor, error)
	GetByID(ctx context.Context, id string) (*domain.NewsAuthor, error)
}

// OpportunityRepository defines read access to active opportunities.
type OpportunityRepository interface {
	ListActive(ctx context.Context, category string, limit int) ([]domain.Opportunity, error)
	StreamActive(ctx context.Context, limit int, callback func(domain.Opportunity) error) error
}

// SubscriptionRepository defines read access to the cached subscription rows.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
}
