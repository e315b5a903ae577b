package model

import "time"

// NewsletterSubscriber represents a newsletter subscription.
// Email is stored lower-cased and is unique across all subscribers.
type NewsletterSubscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// SubscribeOutcome describes what a subscribe operation did.
type SubscribeOutcome string

const (
	// SubscribeCreated means a new subscriber record was inserted.
	SubscribeCreated SubscribeOutcome = "created"
	// SubscribeReactivated means an inactive record was switched back to active.
	SubscribeReactivated SubscribeOutcome = "reactivated"
	// SubscribeUnchanged means the record was already active and nothing was written.
	SubscribeUnchanged SubscribeOutcome = "unchanged"
)

// SubscriberListOptions carries filter parameters for listing subscribers.
type SubscriberListOptions struct {
	// ActiveOnly restricts the listing to active subscriptions.
	ActiveOnly bool
}
