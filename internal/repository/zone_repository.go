package repository

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// ZoneRepository handles persistence for zones.
type ZoneRepository interface {
	// Insert stores a new zone and populates its timestamps from the
	// database. ErrConflict when the name or slug is already taken.
	Insert(ctx context.Context, zone *model.Zone) error
	// GetBySlug returns a single zone by slug.
	GetBySlug(ctx context.Context, slug string) (*model.Zone, error)
	// GetByName returns a single zone by name, compared case-insensitively.
	GetByName(ctx context.Context, name string) (*model.Zone, error)
	// List returns zones ordered by name, paginated by limit/offset.
	List(ctx context.Context, limit, offset int) ([]*model.Zone, error)
	// Count returns the total number of zones.
	Count(ctx context.Context) (int, error)
	// Update applies partial updates to the zone with the given slug.
	Update(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error)
	// Delete removes a zone by slug.
	Delete(ctx context.Context, slug string) error
	// NameExists reports whether a zone with the given name exists,
	// compared case-insensitively, excluding the zone with excludeSlug.
	NameExists(ctx context.Context, name, excludeSlug string) (bool, error)
	// Slugs returns every slug currently in use.
	Slugs(ctx context.Context) ([]string, error)
}
