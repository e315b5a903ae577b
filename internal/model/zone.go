package model

import "time"

// Zone represents a regional chapter of the organization.
// Name is stored Title Cased; Slug is a generated unique identifier
// used in URLs.
type Zone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ZonePatch holds fields that can be updated on a zone.
type ZonePatch struct {
	Name        *string
	Description *string
}
