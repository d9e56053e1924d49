package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
)

var articleColumns = []string{
	"id", "slug", "title", "excerpt", "content", "category", "featured_image",
	"reading_time", "meta_title", "meta_description", "author_id",
	"is_published", "published_at", "created_at", "updated_at",
}

// PostgresNewsArticleRepository implements NewsArticleRepository using PostgreSQL.
type PostgresNewsArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsArticleRepository creates a new PostgresNewsArticleRepository.
func NewPostgresNewsArticleRepository(pool *pgxpool.Pool) *PostgresNewsArticleRepository {
	return &PostgresNewsArticleRepository{pool: pool}
}

func publishedArticles() sq.SelectBuilder {
	return psql.Select(articleColumns...).
		From("news_articles").
		Where(sq.Eq{"is_published": true})
}

// ListPublished returns published articles, newest first.
func (r *PostgresNewsArticleRepository) ListPublished(ctx context.Context, filter domain.NewsFilter) ([]domain.NewsArticle, error) {
	filter = filter.Normalize()

	q := publishedArticles()
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.AuthorID != "" {
		q = q.Where(sq.Eq{"author_id": filter.AuthorID})
	}
	q = q.OrderBy("published_at DESC NULLS LAST", "created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	return r.collect(ctx, q)
}

// GetPublishedBySlug returns the published article with the given slug, or nil.
func (r *PostgresNewsArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	query, args, err := publishedArticles().Where(sq.Eq{"slug": slug}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", slug, err)
	}
	return &article, nil
}

// ListRelated returns other published articles of the same category.
func (r *PostgresNewsArticleRepository) ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]domain.NewsArticle, error) {
	q := publishedArticles().
		Where(sq.Eq{"category": category}).
		Where(sq.NotEq{"slug": excludeSlug}).
		OrderBy("published_at DESC NULLS LAST").
		Limit(uint64(limit))

	return r.collect(ctx, q)
}

// StreamPublished streams up to limit published articles, newest first.
func (r *PostgresNewsArticleRepository) StreamPublished(ctx context.Context, limit int, callback func(domain.NewsArticle) error) error {
	query, args, err := publishedArticles().
		OrderBy("published_at DESC NULLS LAST").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return fmt.Errorf("scan article: %w", err)
		}
		if err := callback(a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func (r *PostgresNewsArticleRepository) collect(ctx context.Context, q sq.SelectBuilder) ([]domain.NewsArticle, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.NewsArticle, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func scanArticle(row pgx.Row) (domain.NewsArticle, error) {
	var a domain.NewsArticle
	var readingTime *int
	err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.FeaturedImage,
		&readingTime, &a.MetaTitle, &a.MetaDescription, &a.AuthorID,
		&a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if readingTime != nil {
		a.ReadingTime = *readingTime
	}
	return a, err
}
