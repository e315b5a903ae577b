package service

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

// CreateZoneInput carries the fields for creating a zone.
type CreateZoneInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateZoneInput carries partial updates for a zone. Nil fields are
// left unchanged.
type UpdateZoneInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ZoneListInput carries pagination for the zone listing.
type ZoneListInput struct {
	Page    int
	PerPage int
}

// ZoneService defines the business logic for zones.
type ZoneService interface {
	// Create stores a new zone with a Title Cased name and a generated
	// unique slug. A case-insensitive name collision returns a
	// *ConflictError.
	Create(ctx context.Context, in CreateZoneInput) (*model.Zone, error)

	// Get returns a single zone by slug.
	Get(ctx context.Context, slug string) (*model.Zone, error)

	// List returns a page of zones ordered by name.
	List(ctx context.Context, in ZoneListInput) (*model.Page[*model.Zone], error)

	// Update applies partial updates to a zone. Name changes are checked
	// for collisions against other zones and Title Cased on write.
	Update(ctx context.Context, slug string, in UpdateZoneInput) (*model.Zone, error)

	// Delete removes a zone. Zones with attached officials are refused
	// with a *ConflictError.
	Delete(ctx context.Context, slug string) error
}
