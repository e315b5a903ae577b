package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/repository"
	"github.com/tyma/backend/internal/validation"
)

// officialServiceImpl is the production implementation of OfficialService.
type officialServiceImpl struct {
	officials repository.OfficialRepository
	zones     repository.ZoneRepository
}

// NewOfficialService creates an OfficialService backed by the given
// repositories. The zone repository resolves zone names on create and
// update.
func NewOfficialService(officials repository.OfficialRepository, zones repository.ZoneRepository) OfficialService {
	return &officialServiceImpl{officials: officials, zones: zones}
}

var _ OfficialService = (*officialServiceImpl)(nil)

// Create stores a new official attached to the named zone.
func (s *officialServiceImpl) Create(ctx context.Context, in CreateOfficialInput) (*model.Official, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.ZoneName = strings.TrimSpace(in.ZoneName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Position = strings.TrimSpace(in.Position)
	in.OfficialType = strings.TrimSpace(in.OfficialType)
	in.Email = validation.NormalizeEmail(in.Email)
	in.Bio = strings.TrimSpace(in.Bio)

	if fields := validation.Validate(in); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	zone, err := s.zones.GetByName(ctx, in.ZoneName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Zone '%s' not found", in.ZoneName)}
		}
		return nil, err
	}

	name := in.FirstName + " " + in.LastName
	exists, err := s.officials.NameEmailExists(ctx, name, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Message: fmt.Sprintf("Official '%s' with email '%s' already exists", name, in.Email)}
	}

	publicID, err := s.freeOfficialID(ctx, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	official := &model.Official{
		ID:           uuid.NewString(),
		OfficialID:   publicID,
		ZoneID:       zone.ID,
		Zone:         zone,
		Name:         name,
		Phone:        in.Phone,
		Email:        in.Email,
		Position:     model.Position(in.Position),
		OfficialType: model.OfficialType(in.OfficialType),
		Bio:          in.Bio,
	}
	if err := s.officials.Insert(ctx, official); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{Message: fmt.Sprintf("Official '%s' with email '%s' already exists", name, in.Email)}
		}
		return nil, err
	}
	return official, nil
}

// Get returns a single official by public ID.
func (s *officialServiceImpl) Get(ctx context.Context, officialID string) (*model.Official, error) {
	official, err := s.officials.GetByOfficialID(ctx, officialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Official with ID '%s' not found", officialID)}
		}
		return nil, err
	}
	return official, nil
}

// List returns a page of officials matching the given filters.
func (s *officialServiceImpl) List(ctx context.Context, in OfficialListInput) (*model.Page[*model.Official], error) {
	opts := model.OfficialListOptions{
		OfficialType: strings.TrimSpace(in.OfficialType),
		Position:     strings.TrimSpace(in.Position),
		ZoneSlug:     strings.TrimSpace(in.ZoneSlug),
	}

	return paginate(ctx, in.Page, in.PerPage,
		func(ctx context.Context) (int, error) {
			return s.officials.Count(ctx, opts)
		},
		func(ctx context.Context, limit, offset int) ([]*model.Official, error) {
			return s.officials.List(ctx, opts, limit, offset)
		},
	)
}

// Update applies partial updates to an official.
func (s *officialServiceImpl) Update(ctx context.Context, officialID string, in UpdateOfficialInput) (*model.Official, error) {
	in.FirstName = trimmed(in.FirstName)
	in.LastName = trimmed(in.LastName)
	in.ZoneName = trimmed(in.ZoneName)
	in.Phone = trimmed(in.Phone)
	in.Position = trimmed(in.Position)
	in.OfficialType = trimmed(in.OfficialType)
	in.Bio = trimmed(in.Bio)
	if in.Email != nil {
		norm := validation.NormalizeEmail(*in.Email)
		in.Email = &norm
	}

	if fields := validation.Validate(in); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	patch := model.OfficialPatch{
		Phone:        in.Phone,
		Email:        in.Email,
		Bio:          in.Bio,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if in.Position != nil {
		p := model.Position(*in.Position)
		patch.Position = &p
	}
	if in.OfficialType != nil {
		t := model.OfficialType(*in.OfficialType)
		patch.OfficialType = &t
	}

	// A first or last name change rebuilds the stored full name, keeping
	// the unchanged half of the current one.
	if in.FirstName != nil || in.LastName != nil {
		current, err := s.officials.GetByOfficialID(ctx, officialID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Message: fmt.Sprintf("Official with ID '%s' not found", officialID)}
			}
			return nil, err
		}
		first, last := splitName(current.Name)
		if in.FirstName != nil {
			first = *in.FirstName
		}
		if in.LastName != nil {
			last = *in.LastName
		}
		full := first + " " + last
		patch.Name = &full
	}

	if in.ZoneName != nil {
		zone, err := s.zones.GetByName(ctx, *in.ZoneName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Message: "Zone not found"}
			}
			return nil, err
		}
		patch.ZoneID = &zone.ID
	}

	official, err := s.officials.Update(ctx, officialID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Official with ID '%s' not found", officialID)}
		}
		return nil, err
	}
	return official, nil
}

// Delete removes an official by public ID.
func (s *officialServiceImpl) Delete(ctx context.Context, officialID string) error {
	if err := s.officials.Delete(ctx, officialID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Message: "Official not found"}
		}
		return err
	}
	return nil
}

// freeOfficialID generates a public ID not yet in use. Each initial
// pair has 9000 possible IDs, so a few attempts always suffice in
// practice.
func (s *officialServiceImpl) freeOfficialID(ctx context.Context, firstName, lastName string) (string, error) {
	for i := 0; i < 10; i++ {
		id := randomOfficialID(firstName, lastName)
		exists, err := s.officials.OfficialIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("allocate official id for %s %s: space exhausted", firstName, lastName)
}

// randomOfficialID builds a public identifier from the upper-cased
// initials of the first and last names followed by four random digits.
// X stands in for a missing name part.
func randomOfficialID(firstName, lastName string) string {
	return nameInitial(firstName) + nameInitial(lastName) + strconv.Itoa(rand.IntN(9000)+1000)
}

func nameInitial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return "X"
}

// splitName breaks a stored full name into first and last parts. A
// single-word name serves as both.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}
