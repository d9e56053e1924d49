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

// PostgresNewsAuthorRepository implements NewsAuthorRepository using PostgreSQL.
type PostgresNewsAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsAuthorRepository creates a new PostgresNewsAuthorRepository.
func NewPostgresNewsAuthorRepository(pool *pgxpool.Pool) *PostgresNewsAuthorRepository {
	return &PostgresNewsAuthorRepository{pool: pool}
}

// authors selects authors with the count of their published articles.
func authors() sq.SelectBuilder {
	return psql.Select(
		"a.id", "a.slug", "a.name", "a.role", "a.bio", "a.avatar_url",
		"a.social_links", "a.expertise",
		"(SELECT COUNT(*) FROM news_articles na WHERE na.author_id = a.id AND na.is_published) AS article_count",
	).From("news_authors a")
}

// List returns all authors ordered by name.
func (r *PostgresNewsAuthorRepository) List(ctx context.Context) ([]domain.NewsAuthor, error) {
	query, args, err := authors().OrderBy("a.name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	result := make([]domain.NewsAuthor, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// GetBySlug returns the author with the given slug, or nil.
func (r *PostgresNewsAuthorRepository) GetBySlug(ctx context.Context, slug string) (*domain.NewsAuthor, error) {
	return r.getOne(ctx, sq.Eq{"a.slug": slug})
}

// GetByID returns the author with the given id, or nil.
func (r *PostgresNewsAuthorRepository) GetByID(ctx context.Context, id string) (*domain.NewsAuthor, error) {
	return r.getOne(ctx, sq.Eq{"a.id": id})
}

func (r *PostgresNewsAuthorRepository) getOne(ctx context.Context, where sq.Eq) (*domain.NewsAuthor, error) {
	query, args, err := authors().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	return &a, nil
}

func scanAuthor(row pgx.Row) (domain.NewsAuthor, error) {
	var a domain.NewsAuthor
	err := row.Scan(&a.ID, &a.Slug, &a.Name, &a.Role, &a.Bio, &a.AvatarURL,
		&a.SocialLinks, &a.Expertise, &a.ArticleCount)
	return a, err
}
