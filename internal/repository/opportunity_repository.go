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

// PostgresOpportunityRepository implements OpportunityRepository using PostgreSQL.
type PostgresOpportunityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOpportunityRepository creates a new PostgresOpportunityRepository.
func NewPostgresOpportunityRepository(pool *pgxpool.Pool) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{pool: pool}
}

func activeOpportunities() sq.SelectBuilder {
	return psql.Select(
		"id", "title", "description", "category", "estimated_amount",
		"active", "deadline", "created_at", "updated_at",
	).From("opportunities").Where(sq.Eq{"active": true})
}

// ListActive returns active opportunities, closest deadline first.
func (r *PostgresOpportunityRepository) ListActive(ctx context.Context, category string, limit int) ([]domain.Opportunity, error) {
	q := activeOpportunities()
	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}
	query, args, err := q.OrderBy("deadline ASC NULLS LAST", "updated_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query opportunities: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Opportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// StreamActive streams up to limit active opportunities, most recently updated first.
func (r *PostgresOpportunityRepository) StreamActive(ctx context.Context, limit int, callback func(domain.Opportunity) error) error {
	query, args, err := activeOpportunities().
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query opportunities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return fmt.Errorf("scan opportunity: %w", err)
		}
		if err := callback(o); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func scanOpportunity(row pgx.Row) (domain.Opportunity, error) {
	var o domain.Opportunity
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Category, &o.EstimatedAmount,
		&o.Active, &o.Deadline, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
