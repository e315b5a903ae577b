package service

import (
	"context"
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/repository"
	"github.com/tyma/backend/internal/validation"
)

const maxResponseNotesLen = 2000

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

var _ ContactService = (*contactServiceImpl)(nil)

// Submit validates and normalizes the input, then persists the
// submission. Name and message are HTML-escaped at write time so the
// stored content is inert when rendered; email and subject are not.
func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = validation.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if fields := validation.Validate(in); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	sub := &model.ContactSubmission{
		ID:      uuid.NewString(),
		Name:    html.EscapeString(in.Name),
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: model.Subject(in.Subject),
		Message: html.EscapeString(in.Message),
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns a page of submissions matching the given filters.
func (s *contactServiceImpl) List(ctx context.Context, in ContactListInput) (*model.Page[*model.ContactSubmission], error) {
	opts := model.ContactListOptions{Email: strings.TrimSpace(in.Email)}
	// An unrecognized subject filter value is ignored, not rejected.
	if subj := model.Subject(strings.TrimSpace(in.Subject)); subj.Valid() {
		opts.Subject = subj
	}

	return paginate(ctx, in.Page, in.PerPage,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, opts)
		},
		func(ctx context.Context, limit, offset int) ([]*model.ContactSubmission, error) {
			return s.repo.List(ctx, opts, limit, offset)
		},
	)
}

// Subjects returns the fixed subject choices with display labels.
func (s *contactServiceImpl) Subjects() []model.SubjectChoice {
	subjects := model.Subjects()
	choices := make([]model.SubjectChoice, len(subjects))
	for i, subj := range subjects {
		choices[i] = model.SubjectChoice{Value: subj, Label: subj.Label()}
	}
	return choices
}

// SetResponded flips the responded flag of a submission.
func (s *contactServiceImpl) SetResponded(ctx context.Context, id string, responded bool, notes *string) (*model.ContactSubmission, error) {
	if uuid.Validate(id) != nil {
		return nil, &NotFoundError{Message: "Contact submission not found"}
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if utf8.RuneCountInString(trimmed) > maxResponseNotesLen {
			return nil, &ValidationError{Fields: map[string]string{
				"response_notes": "Must be at most 2000 characters",
			}}
		}
		notes = &trimmed
	}

	sub, err := s.repo.SetResponded(ctx, id, responded, notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Contact submission not found"}
		}
		return nil, err
	}
	return sub, nil
}
