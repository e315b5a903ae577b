package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/repository"
	"github.com/tyma/backend/internal/validation"
)

// zoneServiceImpl is the production implementation of ZoneService.
type zoneServiceImpl struct {
	zones     repository.ZoneRepository
	officials repository.OfficialRepository
}

// NewZoneService creates a ZoneService backed by the given repositories.
// The official repository is needed to guard deletions of zones that
// still have officials attached.
func NewZoneService(zones repository.ZoneRepository, officials repository.OfficialRepository) ZoneService {
	return &zoneServiceImpl{zones: zones, officials: officials}
}

var _ ZoneService = (*zoneServiceImpl)(nil)

// Create stores a new zone with a Title Cased name and generated slug.
func (s *zoneServiceImpl) Create(ctx context.Context, in CreateZoneInput) (*model.Zone, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if fields := validation.Validate(in); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	taken, err := s.zones.NameExists(ctx, in.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: fmt.Sprintf("Zone '%s' already exists", in.Name)}
	}

	slugs, err := s.zones.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	zone := &model.Zone{
		ID:          uuid.NewString(),
		Name:        titleCase(in.Name),
		Slug:        generateSlug(in.Name, slugs),
		Description: in.Description,
	}
	if err := s.zones.Insert(ctx, zone); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{Message: fmt.Sprintf("Zone '%s' already exists", in.Name)}
		}
		return nil, err
	}
	return zone, nil
}

// Get returns a single zone by slug.
func (s *zoneServiceImpl) Get(ctx context.Context, slug string) (*model.Zone, error) {
	zone, err := s.zones.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Zone with slug '%s' not found", slug)}
		}
		return nil, err
	}
	return zone, nil
}

// List returns a page of zones ordered by name.
func (s *zoneServiceImpl) List(ctx context.Context, in ZoneListInput) (*model.Page[*model.Zone], error) {
	return paginate(ctx, in.Page, in.PerPage,
		func(ctx context.Context) (int, error) {
			return s.zones.Count(ctx)
		},
		func(ctx context.Context, limit, offset int) ([]*model.Zone, error) {
			return s.zones.List(ctx, limit, offset)
		},
	)
}

// Update applies partial updates to a zone.
func (s *zoneServiceImpl) Update(ctx context.Context, slug string, in UpdateZoneInput) (*model.Zone, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		in.Description = &trimmed
	}
	if fields := validation.Validate(in); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	patch := model.ZonePatch{Description: in.Description}
	if in.Name != nil {
		taken, err := s.zones.NameExists(ctx, *in.Name, slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Message: fmt.Sprintf("Zone name '%s' already exists", *in.Name)}
		}
		titled := titleCase(*in.Name)
		patch.Name = &titled
	}

	zone, err := s.zones.Update(ctx, slug, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, &NotFoundError{Message: fmt.Sprintf("Zone with slug '%s' not found", slug)}
		case errors.Is(err, repository.ErrConflict):
			return nil, &ConflictError{Message: fmt.Sprintf("Zone name '%s' already exists", *patch.Name)}
		}
		return nil, err
	}
	return zone, nil
}

// Delete removes a zone unless officials are still attached to it.
func (s *zoneServiceImpl) Delete(ctx context.Context, slug string) error {
	zone, err := s.zones.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Message: "Zone not found"}
		}
		return err
	}

	attached, err := s.officials.CountByZone(ctx, zone.ID)
	if err != nil {
		return err
	}
	if attached > 0 {
		return &ConflictError{Message: "Cannot delete zone with associated officials"}
	}

	if err := s.zones.Delete(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Message: "Zone not found"}
		}
		return err
	}
	return nil
}

// titleCase capitalizes the first letter of each word.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

var slugStrip = regexp.MustCompile(`[^a-z\s-]`)

// generateSlug derives a unique, human-readable slug for a zone name.
// It prefers the full hyphenated name, then word initials, then
// growing prefixes of the cleaned name, and falls back to appending a
// random letter.
func generateSlug(name string, existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}

	cleaned := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")

	simple := strings.ReplaceAll(cleaned, " ", "-")
	if !taken[simple] {
		return simple
	}

	if words := strings.Fields(cleaned); len(words) > 1 {
		var b strings.Builder
		for _, w := range words {
			b.WriteByte(w[0])
		}
		if initials := b.String(); !taken[initials] {
			return initials
		}
	}

	for i := 1; i < len(cleaned); i++ {
		candidate := strings.ReplaceAll(cleaned[:i+1], " ", "-")
		if !taken[candidate] {
			return candidate
		}
	}

	for {
		candidate := simple + "-" + string(rune('a'+rand.IntN(26)))
		if !taken[candidate] {
			return candidate
		}
	}
}
