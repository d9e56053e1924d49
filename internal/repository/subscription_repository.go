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

// PostgresSubscriptionRepository implements SubscriptionRepository using PostgreSQL.
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository.
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

// GetByUserID returns the user's subscription row, or nil when there is none.
func (r *PostgresSubscriptionRepository) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	query, args, err := psql.Select(
		"id", "user_id", "plan", "status", "started_at", "ends_at", "created_at", "updated_at",
	).From("subscriptions").
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s domain.Subscription
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.UserID, &s.Plan, &s.Status, &s.StartedAt, &s.EndsAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}
