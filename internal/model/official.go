package model

import "time"

// Position is the role an official holds within a zone.
type Position string

const (
	PositionChairman     Position = "CHAIRMAN"
	PositionViceChairman Position = "VICE_CHAIRMAN"
	PositionCoordinator  Position = "COORDINATOR"
)

// Valid reports whether p is one of the enumerated positions.
func (p Position) Valid() bool {
	switch p {
	case PositionChairman, PositionViceChairman, PositionCoordinator:
		return true
	}
	return false
}

// Label returns the human-readable display label for p.
func (p Position) Label() string {
	switch p {
	case PositionChairman:
		return "Chairman"
	case PositionViceChairman:
		return "Vice Chairman"
	case PositionCoordinator:
		return "Zonal Coordinator"
	}
	return string(p)
}

// OfficialType classifies an official's relationship to the organization.
type OfficialType string

const (
	OfficialTypeBoard     OfficialType = "BOARD"
	OfficialTypeStaff     OfficialType = "STAFF"
	OfficialTypeVolunteer OfficialType = "VOLUNTEER"
	OfficialTypeAdvisor   OfficialType = "ADVISOR"
	OfficialTypeAdmin     OfficialType = "ADMIN"
)

// Valid reports whether t is one of the enumerated official types.
func (t OfficialType) Valid() bool {
	switch t {
	case OfficialTypeBoard, OfficialTypeStaff, OfficialTypeVolunteer, OfficialTypeAdvisor, OfficialTypeAdmin:
		return true
	}
	return false
}

// Label returns the human-readable display label for t.
func (t OfficialType) Label() string {
	switch t {
	case OfficialTypeBoard:
		return "Board Member"
	case OfficialTypeStaff:
		return "Staff Member"
	case OfficialTypeVolunteer:
		return "Volunteer"
	case OfficialTypeAdvisor:
		return "Advisor"
	case OfficialTypeAdmin:
		return "Admin"
	}
	return string(t)
}

// Official represents a member of the organization attached to a zone.
// OfficialID is the public identifier (initials plus four digits) used
// in URLs; ID is the internal primary key.
type Official struct {
	ID           string       `json:"id"`
	OfficialID   string       `json:"official_id"`
	ZoneID       string       `json:"-"`
	Zone         *Zone        `json:"zone,omitempty"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Position     Position     `json:"position"`
	OfficialType OfficialType `json:"official_type"`
	Bio          string       `json:"bio,omitempty"`
	IsActive     bool         `json:"is_active"`
	DisplayOrder int          `json:"display_order"`
	StartDate    *time.Time   `json:"start_date,omitempty"`
	EndDate      *time.Time   `json:"end_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// OfficialListOptions carries filter parameters for listing officials.
type OfficialListOptions struct {
	// OfficialType filters by case-insensitive exact match. Empty means no filter.
	OfficialType string
	// Position filters by case-insensitive exact match. Empty means no filter.
	Position string
	// ZoneSlug filters officials belonging to the zone with this slug.
	ZoneSlug string
}

// OfficialPatch holds fields that can be updated on an official.
type OfficialPatch struct {
	Name         *string
	ZoneID       *string
	Phone        *string
	Email        *string
	Position     *Position
	OfficialType *OfficialType
	Bio          *string
	IsActive     *bool
	DisplayOrder *int
	StartDate    *time.Time
	EndDate      *time.Time
}
