package repository

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// OfficialRepository handles persistence for officials.
type OfficialRepository interface {
	// Insert stores a new official and populates its timestamps from the
	// database. ErrConflict when the public official ID is already taken.
	Insert(ctx context.Context, o *model.Official) error
	// GetByOfficialID returns a single official (with its zone) by public ID.
	GetByOfficialID(ctx context.Context, officialID string) (*model.Official, error)
	// List returns officials (with their zones) matching opts, ordered by
	// display order then name, paginated by limit/offset.
	List(ctx context.Context, opts model.OfficialListOptions, limit, offset int) ([]*model.Official, error)
	// Count returns the number of officials matching opts.
	Count(ctx context.Context, opts model.OfficialListOptions) (int, error)
	// Update applies partial updates to the official with the given public ID.
	Update(ctx context.Context, officialID string, patch model.OfficialPatch) (*model.Official, error)
	// Delete removes an official by public ID.
	Delete(ctx context.Context, officialID string) error
	// NameEmailExists reports whether an official with the given name and
	// email exists, compared case-insensitively.
	NameEmailExists(ctx context.Context, name, email string) (bool, error)
	// OfficialIDExists reports whether the public ID is already in use.
	OfficialIDExists(ctx context.Context, officialID string) (bool, error)
	// CountByZone returns the number of officials attached to a zone.
	CountByZone(ctx context.Context, zoneID string) (int, error)
}
