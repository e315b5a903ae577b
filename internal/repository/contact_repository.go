package repository

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// ContactRepository handles persistence for contact submissions.
type ContactRepository interface {
	// Insert stores a new submission and populates CreatedAt from the database.
	Insert(ctx context.Context, sub *model.ContactSubmission) error
	// List returns submissions matching opts, newest first, paginated by limit/offset.
	List(ctx context.Context, opts model.ContactListOptions, limit, offset int) ([]*model.ContactSubmission, error)
	// Count returns the number of submissions matching opts.
	Count(ctx context.Context, opts model.ContactListOptions) (int, error)
	// SetResponded updates the responded flag, and the notes when non-nil,
	// returning the updated submission.
	SetResponded(ctx context.Context, id string, responded bool, notes *string) (*model.ContactSubmission, error)
}
