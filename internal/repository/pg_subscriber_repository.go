package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tyma/backend/internal/model"
)

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by the given pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

// Ensure PgSubscriberRepository implements SubscriberRepository at compile time.
var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// The prior CTE captures the row state before the upsert runs, in the
// same snapshot, which is what lets a single statement distinguish
// create / reactivate / already-active.
const subscribeQuery = `
WITH prior AS (
	SELECT is_active FROM newsletter_subscribers WHERE email = $2
), upserted AS (
	INSERT INTO newsletter_subscribers (id, email)
	VALUES ($1, $2)
	ON CONFLICT (email) DO UPDATE SET
		is_active       = TRUE,
		subscribed_at   = CASE WHEN newsletter_subscribers.is_active
		                       THEN newsletter_subscribers.subscribed_at ELSE NOW() END,
		unsubscribed_at = CASE WHEN newsletter_subscribers.is_active
		                       THEN newsletter_subscribers.unsubscribed_at ELSE NULL END
	RETURNING id, email, is_active, subscribed_at, unsubscribed_at
)
SELECT u.id, u.email, u.is_active, u.subscribed_at, u.unsubscribed_at,
       EXISTS (SELECT 1 FROM prior)                 AS existed,
       COALESCE((SELECT is_active FROM prior), FALSE) AS was_active
FROM upserted u`

// Subscribe inserts a new active subscriber or reactivates an inactive
// one in a single atomic statement.
func (r *PgSubscriberRepository) Subscribe(ctx context.Context, id, email string) (*model.NewsletterSubscriber, model.SubscribeOutcome, error) {
	var (
		sub       model.NewsletterSubscriber
		existed   bool
		wasActive bool
	)
	err := r.pool.QueryRow(ctx, subscribeQuery, id, email).Scan(
		&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt,
		&existed, &wasActive,
	)
	if err != nil {
		return nil, "", err
	}

	switch {
	case !existed:
		return &sub, model.SubscribeCreated, nil
	case wasActive:
		return &sub, model.SubscribeUnchanged, nil
	default:
		return &sub, model.SubscribeReactivated, nil
	}
}

// Unsubscribe deactivates an active subscription. ErrNotFound when the
// email has no active subscription.
func (r *PgSubscriberRepository) Unsubscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	err := r.pool.QueryRow(ctx,
		`UPDATE newsletter_subscribers
		 SET is_active = FALSE, unsubscribed_at = NOW()
		 WHERE email = $1 AND is_active
		 RETURNING id, email, is_active, subscribed_at, unsubscribed_at`,
		email,
	).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// List returns subscribers ordered by most recent subscription.
func (r *PgSubscriberRepository) List(ctx context.Context, opts model.SubscriberListOptions, limit, offset int) ([]*model.NewsletterSubscriber, error) {
	where := ""
	if opts.ActiveOnly {
		where = "WHERE is_active "
	}
	query := `SELECT id, email, is_active, subscribed_at, unsubscribed_at
	          FROM newsletter_subscribers ` + where + `
	          ORDER BY subscribed_at DESC
	          LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.NewsletterSubscriber
	for rows.Next() {
		var s model.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Count returns the number of subscribers matching opts.
func (r *PgSubscriberRepository) Count(ctx context.Context, opts model.SubscriberListOptions) (int, error) {
	where := ""
	if opts.ActiveOnly {
		where = "WHERE is_active"
	}
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers `+where).Scan(&total)
	return total, err
}
