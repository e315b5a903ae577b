package service

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// SubscribeResult pairs the subscriber row with what the operation did.
type SubscribeResult struct {
	Subscriber *model.NewsletterSubscriber
	Outcome    model.SubscribeOutcome
}

// SubscriberListInput carries admin listing filters and pagination.
type SubscriberListInput struct {
	ActiveOnly bool
	Page       int
	PerPage    int
}

// NewsletterService defines the business logic for newsletter subscriptions.
type NewsletterService interface {
	// Subscribe activates a subscription for the email, creating a new
	// record or reactivating an inactive one. Subscribing an already
	// active email is an idempotent no-op; the outcome reports which of
	// the three cases applied.
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)

	// Unsubscribe deactivates the subscription for the email. When the
	// email is not actively subscribed nothing is written and the
	// returned subscriber is nil.
	Unsubscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error)

	// Subscribers returns a page of subscribers, newest first.
	Subscribers(ctx context.Context, in SubscriberListInput) (*model.Page[*model.NewsletterSubscriber], error)
}
