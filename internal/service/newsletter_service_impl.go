package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/repository"
	"github.com/tyma/backend/internal/validation"
)

// emailInput is the validation target for subscribe/unsubscribe.
type emailInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// newsletterServiceImpl is the production implementation of NewsletterService.
type newsletterServiceImpl struct {
	repo repository.SubscriberRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.SubscriberRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

var _ NewsletterService = (*newsletterServiceImpl)(nil)

// Subscribe activates a subscription for the email. The
// create-or-reactivate decision happens in a single atomic statement
// in the repository, so a concurrent subscribe cannot produce a
// duplicate row.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	email = validation.NormalizeEmail(email)
	if fields := validation.Validate(emailInput{Email: email}); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	sub, outcome, err := s.repo.Subscribe(ctx, uuid.NewString(), email)
	if err != nil {
		return nil, err
	}
	return &SubscribeResult{Subscriber: sub, Outcome: outcome}, nil
}

// Unsubscribe deactivates the subscription for the email. Absent or
// already inactive subscriptions are left untouched.
func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	email = validation.NormalizeEmail(email)
	if fields := validation.Validate(emailInput{Email: email}); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	sub, err := s.repo.Unsubscribe(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

// Subscribers returns a page of subscribers, newest subscription first.
func (s *newsletterServiceImpl) Subscribers(ctx context.Context, in SubscriberListInput) (*model.Page[*model.NewsletterSubscriber], error) {
	opts := model.SubscriberListOptions{ActiveOnly: in.ActiveOnly}

	return paginate(ctx, in.Page, in.PerPage,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, opts)
		},
		func(ctx context.Context, limit, offset int) ([]*model.NewsletterSubscriber, error) {
			return s.repo.List(ctx, opts, limit, offset)
		},
	)
}
