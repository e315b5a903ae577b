package repository

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// SubscriberRepository handles persistence for newsletter subscribers.
type SubscriberRepository interface {
	// Subscribe creates the subscriber or reactivates an inactive one as a
	// single atomic statement, so concurrent subscribes cannot produce
	// duplicate rows. id is used only when a new row is inserted. The
	// returned outcome reports whether the row was created, reactivated,
	// or already active (in which case nothing was written).
	Subscribe(ctx context.Context, id, email string) (*model.NewsletterSubscriber, model.SubscribeOutcome, error)
	// Unsubscribe deactivates an active subscription and returns the
	// updated row. ErrNotFound when no active subscription exists.
	Unsubscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	// List returns subscribers, newest subscription first, paginated by limit/offset.
	List(ctx context.Context, opts model.SubscriberListOptions, limit, offset int) ([]*model.NewsletterSubscriber, error)
	// Count returns the number of subscribers matching opts.
	Count(ctx context.Context, opts model.SubscriberListOptions) (int, error)
}
