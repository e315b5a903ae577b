package service

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// ContactInput carries the raw fields of a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,contact_subject"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// ContactListInput carries admin listing filters and pagination.
type ContactListInput struct {
	// Email filters by case-insensitive substring match.
	Email string
	// Subject filters by exact match; unrecognized values are ignored.
	Subject string
	Page    int
	PerPage int
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and normalizes the input, then stores a new
	// submission. Invalid input returns a *ValidationError and writes
	// nothing.
	Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error)

	// List returns a page of submissions matching the given filters,
	// newest first.
	List(ctx context.Context, in ContactListInput) (*model.Page[*model.ContactSubmission], error)

	// Subjects returns the fixed subject choices with display labels.
	Subjects() []model.SubjectChoice

	// SetResponded flips the responded flag of a submission. A non-nil
	// notes replaces the stored response notes.
	SetResponded(ctx context.Context, id string, responded bool, notes *string) (*model.ContactSubmission, error)
}
