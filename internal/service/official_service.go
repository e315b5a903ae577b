package service

import (
	"context"
	"time"

	"github.com/tyma/backend/internal/model"
)

// CreateOfficialInput carries the fields for creating an official.
type CreateOfficialInput struct {
	FirstName    string `json:"firstname" validate:"required,max=100"`
	LastName     string `json:"lastname" validate:"required,max=100"`
	ZoneName     string `json:"zone_name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=20"`
	Position     string `json:"position" validate:"required,official_position"`
	OfficialType string `json:"official_type" validate:"required,official_type"`
	Email        string `json:"email" validate:"omitempty,email,max=254"`
	Bio          string `json:"bio"`
}

// UpdateOfficialInput carries partial updates for an official. Nil
// fields are left unchanged.
type UpdateOfficialInput struct {
	FirstName    *string    `json:"firstname" validate:"omitempty,min=1,max=100"`
	LastName     *string    `json:"lastname" validate:"omitempty,min=1,max=100"`
	ZoneName     *string    `json:"zone_name" validate:"omitempty,min=1,max=100"`
	Phone        *string    `json:"phone" validate:"omitempty,max=20"`
	Position     *string    `json:"position" validate:"omitempty,official_position"`
	OfficialType *string    `json:"official_type" validate:"omitempty,official_type"`
	Email        *string    `json:"email" validate:"omitempty,email,max=254"`
	Bio          *string    `json:"bio"`
	IsActive     *bool      `json:"is_active"`
	DisplayOrder *int       `json:"display_order" validate:"omitempty,min=0"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// OfficialListInput carries listing filters and pagination.
type OfficialListInput struct {
	// OfficialType and Position filter by case-insensitive exact match.
	OfficialType string
	Position     string
	// ZoneSlug restricts to officials of a single zone.
	ZoneSlug string
	Page     int
	PerPage  int
}

// OfficialService defines the business logic for officials.
type OfficialService interface {
	// Create stores a new official attached to the zone with the given
	// name. The public official ID (initials plus four digits) is
	// generated here and regenerated on collision.
	Create(ctx context.Context, in CreateOfficialInput) (*model.Official, error)

	// Get returns a single official by public ID.
	Get(ctx context.Context, officialID string) (*model.Official, error)

	// List returns a page of officials ordered by display order then name.
	List(ctx context.Context, in OfficialListInput) (*model.Page[*model.Official], error)

	// Update applies partial updates to an official. First/last name
	// changes rebuild the stored full name; a zone name re-resolves the
	// zone.
	Update(ctx context.Context, officialID string, in UpdateOfficialInput) (*model.Official, error)

	// Delete removes an official by public ID.
	Delete(ctx context.Context, officialID string) error
}
